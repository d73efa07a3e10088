package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukydev/car-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// snapshotDocument is the root BSON document of a snapshot file.
type snapshotDocument struct {
	Vehicles []models.Vehicle `bson:"vehicles"`
}

// EncodeSnapshot serializes the whole store.
func EncodeSnapshot(s *Store) ([]byte, error) {
	doc := snapshotDocument{Vehicles: make([]models.Vehicle, 0, len(s.vehicles))}
	for _, v := range s.vehicles {
		doc.Vehicles = append(doc.Vehicles, *v)
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, &PersistenceError{Op: "encode", Err: err}
	}
	return data, nil
}

// DecodeSnapshot rebuilds a store from EncodeSnapshot output. A snapshot that
// breaks the store's naming or value rules is rejected as a whole.
func DecodeSnapshot(data []byte) (*Store, error) {
	var doc snapshotDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, &PersistenceError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)}
	}

	s := NewStore()
	for _, v := range doc.Vehicles {
		if err := s.AddVehicle(v.Name, v.Mileage); err != nil {
			return nil, &PersistenceError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)}
		}
		for _, item := range v.Items {
			if item.Name != "" && !s.IsNewItem(v.Name, item.Name) {
				err := fmt.Errorf("%w: %q on %q", ErrDuplicateItem, item.Name, v.Name)
				return nil, &PersistenceError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)}
			}
			if err := s.PutItem(v.Name, item); err != nil {
				return nil, &PersistenceError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)}
			}
		}
	}
	return s, nil
}

// SaveSnapshot writes the store to path, replacing any existing file whole.
// The data goes to a temporary file in the same directory first, so a failed
// write leaves the previous snapshot in place.
func SaveSnapshot(path string, s *Store) error {
	data, err := EncodeSnapshot(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// LoadSnapshot reads a store from path. A missing file yields an error
// matching ErrSnapshotNotFound.
func LoadSnapshot(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrSnapshotNotFound, err)
		}
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	s, err := DecodeSnapshot(data)
	if err != nil {
		var perr *PersistenceError
		if errors.As(err, &perr) {
			perr.Op = "load"
			perr.Path = path
			return nil, perr
		}
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	return s, nil
}
