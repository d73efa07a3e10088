package db

// SnapshotStore defines the interface for whole-store persistence.
type SnapshotStore interface {
	Load(path string) (*Store, error)
	Save(path string, s *Store) error
}

// FileSnapshots implements SnapshotStore with BSON snapshot files on local disk.
type FileSnapshots struct{}

// Load reads a snapshot file.
func (FileSnapshots) Load(path string) (*Store, error) {
	return LoadSnapshot(path)
}

// Save writes a snapshot file.
func (FileSnapshots) Save(path string, s *Store) error {
	return SaveSnapshot(path, s)
}
