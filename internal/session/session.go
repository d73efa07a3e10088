// Package session drives one interactive use of the maintenance store.
//
// A Session loads the primary snapshot when it is opened, applies the user's
// edits to the in-memory store, and writes the store back on Save. Backup and
// Restore move the whole store to and from a second snapshot file. The
// session also keeps the vehicle and item the user currently has selected.
package session

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/models"
	"github.com/ukydev/car-maintenance/internal/schedule"
	"github.com/ukydev/car-maintenance/internal/validation"
)

// ErrNoSelection is returned when an item is selected before a vehicle.
var ErrNoSelection = errors.New("no vehicle selected")

// Paths names the two snapshot files a session uses.
type Paths struct {
	DataFile   string
	BackupFile string
}

// Session owns the store for the life of the process.
type Session struct {
	store     *db.Store
	snapshots db.SnapshotStore
	paths     Paths
	log       logrus.FieldLogger

	vehicle string
	item    string
}

// Open loads the primary snapshot. If it cannot be read the session starts
// with an empty store; a missing file is expected on first use.
func Open(paths Paths, snapshots db.SnapshotStore, logger logrus.FieldLogger) *Session {
	s := &Session{snapshots: snapshots, paths: paths, log: logger}

	store, err := snapshots.Load(paths.DataFile)
	switch {
	case err == nil:
		s.store = store
		logger.WithFields(logrus.Fields{
			"file":     paths.DataFile,
			"vehicles": len(store.Vehicles()),
		}).Debug("Loaded snapshot")
	case errors.Is(err, db.ErrSnapshotNotFound):
		s.store = db.NewStore()
		logger.WithField("file", paths.DataFile).Info("No snapshot yet, starting empty")
	default:
		s.store = db.NewStore()
		logger.WithError(err).WithField("file", paths.DataFile).Warn("Unable to load snapshot, starting empty")
	}
	return s
}

// Store returns the session's store for read access.
func (s *Session) Store() *db.Store {
	return s.store
}

// Save writes the store to the primary snapshot.
func (s *Session) Save() error {
	if err := s.snapshots.Save(s.paths.DataFile, s.store); err != nil {
		s.log.WithError(err).Error("Failed to save snapshot")
		return err
	}
	s.log.WithField("file", s.paths.DataFile).Debug("Saved snapshot")
	return nil
}

// Backup writes the store to the backup snapshot.
func (s *Session) Backup() error {
	if err := s.snapshots.Save(s.paths.BackupFile, s.store); err != nil {
		s.log.WithError(err).Error("Failed to write backup")
		return err
	}
	s.log.WithField("file", s.paths.BackupFile).Info("Backup written")
	return nil
}

// Restore replaces the whole store with the backup snapshot. On failure the
// current store is kept.
func (s *Session) Restore() error {
	store, err := s.snapshots.Load(s.paths.BackupFile)
	if err != nil {
		s.log.WithError(err).Error("Failed to restore backup")
		return err
	}
	s.store = store
	s.ClearSelection()
	s.log.WithFields(logrus.Fields{
		"file":     s.paths.BackupFile,
		"vehicles": len(store.Vehicles()),
	}).Info("Backup restored")
	return nil
}

// SelectVehicle makes name the current vehicle and clears the current item.
func (s *Session) SelectVehicle(name string) error {
	if _, err := s.store.Vehicle(name); err != nil {
		return err
	}
	s.vehicle = name
	s.item = ""
	return nil
}

// SelectItem makes name the current item of the current vehicle.
func (s *Session) SelectItem(name string) error {
	if s.vehicle == "" {
		return ErrNoSelection
	}
	if _, err := s.store.Item(s.vehicle, name); err != nil {
		return err
	}
	s.item = name
	return nil
}

// SelectedVehicle returns the current vehicle, or "".
func (s *Session) SelectedVehicle() string {
	return s.vehicle
}

// SelectedItem returns the current item, or "".
func (s *Session) SelectedItem() string {
	return s.item
}

// ClearSelection forgets the current vehicle and item.
func (s *Session) ClearSelection() {
	s.vehicle = ""
	s.item = ""
}

// AddVehicle validates the name and mileage text, adds the vehicle and selects it.
func (s *Session) AddVehicle(name, mileageText string) error {
	if name == "" {
		return validation.Invalid("vehicle name", name, "is required")
	}
	if !s.store.IsNewVehicle(name) {
		return validation.Invalid("vehicle name", name, "already exists")
	}
	mileage, err := validation.ParseMileage("mileage", mileageText)
	if err != nil {
		return err
	}
	if err := s.store.AddVehicle(name, mileage); err != nil {
		return err
	}
	s.vehicle = name
	s.item = ""
	s.log.WithFields(logrus.Fields{"vehicle": name, "mileage": mileage}).Info("Added vehicle")
	return nil
}

// DeleteVehicle removes a vehicle and its items.
func (s *Session) DeleteVehicle(name string) error {
	if err := s.store.DeleteVehicle(name); err != nil {
		return err
	}
	if s.vehicle == name {
		s.ClearSelection()
	}
	s.log.WithField("vehicle", name).Info("Deleted vehicle")
	return nil
}

// UpdateMileage validates the mileage text and stores it.
func (s *Session) UpdateMileage(vehicle, mileageText string) error {
	mileage, err := validation.ParseMileage("mileage", mileageText)
	if err != nil {
		return err
	}
	if err := s.store.SetMileage(vehicle, mileage); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"vehicle": vehicle, "mileage": mileage}).Info("Updated mileage")
	return nil
}

// AddItem defines a new maintenance item. Blank frequencies leave that
// dimension untracked; nothing is recorded as performed yet.
func (s *Session) AddItem(vehicle, item, freqMilesText, freqMonthsText string) error {
	if item == "" {
		return validation.Invalid("item name", item, "is required")
	}
	freqMiles, freqMonths, err := parseFrequency(freqMilesText, freqMonthsText)
	if err != nil {
		return err
	}
	if _, err := s.store.Vehicle(vehicle); err != nil {
		return err
	}
	if !s.store.IsNewItem(vehicle, item) {
		return validation.Invalid("item name", item, "already exists")
	}
	if err := s.store.PutItem(vehicle, models.MaintenanceItem{
		Name:       item,
		FreqMiles:  freqMiles,
		FreqMonths: freqMonths,
	}); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"vehicle": vehicle, "item": item}).Info("Added maintenance item")
	return nil
}

// EditItem changes the frequency of an existing item and keeps its
// last-performed mileage and date.
func (s *Session) EditItem(vehicle, item, freqMilesText, freqMonthsText string) error {
	freqMiles, freqMonths, err := parseFrequency(freqMilesText, freqMonthsText)
	if err != nil {
		return err
	}
	current, err := s.store.Item(vehicle, item)
	if err != nil {
		return err
	}
	current.FreqMiles = freqMiles
	current.FreqMonths = freqMonths
	if err := s.store.PutItem(vehicle, current); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"vehicle": vehicle, "item": item}).Info("Updated maintenance frequency")
	return nil
}

// RecordMaintenance overwrites an item's last-performed mileage and date and
// keeps its frequency. Blank text clears the field.
func (s *Session) RecordMaintenance(vehicle, item, lastMileageText, lastDateText string) error {
	lastMileage, err := validation.ParseOptionalInt("mileage", lastMileageText)
	if err != nil {
		return err
	}
	lastDate, err := validation.ParseDate("date", lastDateText)
	if err != nil {
		return err
	}
	current, err := s.store.Item(vehicle, item)
	if err != nil {
		return err
	}
	current.LastMileage = lastMileage
	current.LastDate = lastDate
	if err := s.store.PutItem(vehicle, current); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"vehicle": vehicle,
		"item":    item,
		"mileage": lastMileageText,
		"date":    lastDateText,
	}).Info("Recorded maintenance")
	return nil
}

// DeleteItem removes an item from a vehicle.
func (s *Session) DeleteItem(vehicle, item string) error {
	if err := s.store.DeleteItem(vehicle, item); err != nil {
		return err
	}
	if s.vehicle == vehicle && s.item == item {
		s.item = ""
	}
	s.log.WithFields(logrus.Fields{"vehicle": vehicle, "item": item}).Info("Deleted maintenance item")
	return nil
}

func parseFrequency(milesText, monthsText string) (*int, *int, error) {
	miles, err := validation.ParseOptionalInt("mileage interval", milesText)
	if err != nil {
		return nil, nil, err
	}
	months, err := validation.ParseOptionalInt("month interval", monthsText)
	if err != nil {
		return nil, nil, err
	}
	return miles, months, nil
}

// ItemStatus is one item of a vehicle with its due state.
type ItemStatus struct {
	models.MaintenanceItem `yaml:",inline"`
	Due                    bool               `json:"due" yaml:"due"`
	NextDue                schedule.Threshold `json:"next_due" yaml:"next_due"`
}

// VehicleStatus is one vehicle with its due state.
type VehicleStatus struct {
	Name    string `json:"name" yaml:"name"`
	Mileage int    `json:"mileage" yaml:"mileage"`
	Due     bool   `json:"due" yaml:"due"`
}

// VehicleDue lists the due items of a vehicle that needs maintenance.
type VehicleDue struct {
	Name    string       `json:"name" yaml:"name"`
	Mileage int          `json:"mileage" yaml:"mileage"`
	Items   []ItemStatus `json:"items" yaml:"items"`
}

// Overview returns every vehicle, in order, with whether it needs maintenance.
func (s *Session) Overview(now time.Time) []VehicleStatus {
	out := make([]VehicleStatus, 0)
	for _, name := range s.store.Vehicles() {
		v, err := s.store.Vehicle(name)
		if err != nil {
			continue
		}
		due, _ := s.store.VehicleNeedsMaintenance(name, now)
		out = append(out, VehicleStatus{Name: name, Mileage: v.Mileage, Due: due})
	}
	return out
}

// ItemStatuses returns the vehicle's items, in order, with their due state.
func (s *Session) ItemStatuses(vehicle string, now time.Time) ([]ItemStatus, error) {
	v, err := s.store.Vehicle(vehicle)
	if err != nil {
		return nil, err
	}
	out := make([]ItemStatus, 0, len(v.Items))
	for _, it := range v.Items {
		out = append(out, ItemStatus{
			MaintenanceItem: it,
			Due:             schedule.ItemDue(v.Mileage, it, now),
			NextDue:         schedule.NextDue(it),
		})
	}
	return out, nil
}

// Report lists the vehicles that need maintenance at now and which of their
// items are due. It is empty when nothing is due.
func (s *Session) Report(now time.Time) []VehicleDue {
	out := make([]VehicleDue, 0)
	for _, name := range s.store.Vehicles() {
		items, err := s.ItemStatuses(name, now)
		if err != nil {
			continue
		}
		entry := VehicleDue{Name: name}
		entry.Mileage, _ = s.store.Mileage(name)
		for _, it := range items {
			if it.Due {
				entry.Items = append(entry.Items, it)
			}
		}
		if len(entry.Items) > 0 {
			out = append(out, entry)
		}
	}
	return out
}
