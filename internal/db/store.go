// Package db holds the in-memory vehicle store and its on-disk snapshots.
package db

import (
	"fmt"
	"time"

	"github.com/ukydev/car-maintenance/internal/models"
	"github.com/ukydev/car-maintenance/internal/schedule"
)

// Store maps vehicle names to vehicles and remembers insertion order.
// It is not safe for concurrent use.
type Store struct {
	vehicles []*models.Vehicle
	index    map[string]*models.Vehicle
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]*models.Vehicle)}
}

// AddVehicle inserts a vehicle with no maintenance items.
func (s *Store) AddVehicle(name string, mileage int) error {
	if name == "" {
		return ErrBlankName
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVehicle, name)
	}
	if mileage < 0 {
		return fmt.Errorf("%w: mileage %d", ErrNegativeValue, mileage)
	}
	v := &models.Vehicle{Name: name, Mileage: mileage}
	s.vehicles = append(s.vehicles, v)
	s.index[name] = v
	return nil
}

// DeleteVehicle removes a vehicle together with its items.
func (s *Store) DeleteVehicle(name string) error {
	if _, err := s.vehicle(name); err != nil {
		return err
	}
	delete(s.index, name)
	for i, v := range s.vehicles {
		if v.Name == name {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			break
		}
	}
	return nil
}

// IsNewVehicle reports whether name is non-blank and not already stored.
func (s *Store) IsNewVehicle(name string) bool {
	if name == "" {
		return false
	}
	_, ok := s.index[name]
	return !ok
}

// SetMileage replaces the vehicle's odometer reading.
func (s *Store) SetMileage(name string, mileage int) error {
	v, err := s.vehicle(name)
	if err != nil {
		return err
	}
	if mileage < 0 {
		return fmt.Errorf("%w: mileage %d", ErrNegativeValue, mileage)
	}
	v.Mileage = mileage
	return nil
}

// Mileage returns the vehicle's odometer reading.
func (s *Store) Mileage(name string) (int, error) {
	v, err := s.vehicle(name)
	if err != nil {
		return 0, err
	}
	return v.Mileage, nil
}

// PutItem adds item to the vehicle, or replaces the item with the same name
// in place. All fields are overwritten; callers carry forward what they keep.
func (s *Store) PutItem(vehicle string, item models.MaintenanceItem) error {
	v, err := s.vehicle(vehicle)
	if err != nil {
		return err
	}
	if item.Name == "" {
		return ErrBlankName
	}
	for _, p := range []*int{item.FreqMiles, item.FreqMonths, item.LastMileage} {
		if p != nil && *p < 0 {
			return fmt.Errorf("%w: item %q", ErrNegativeValue, item.Name)
		}
	}

	stored := item.Clone()
	if stored.LastDate != nil {
		*stored.LastDate = models.DateOf(*stored.LastDate)
	}
	if i := v.Item(item.Name); i >= 0 {
		v.Items[i] = stored
	} else {
		v.Items = append(v.Items, stored)
	}
	return nil
}

// DeleteItem removes an item from the vehicle.
func (s *Store) DeleteItem(vehicle, item string) error {
	v, err := s.vehicle(vehicle)
	if err != nil {
		return err
	}
	i := v.Item(item)
	if i < 0 {
		return fmt.Errorf("%w: %q on %q", ErrItemNotFound, item, vehicle)
	}
	v.Items = append(v.Items[:i], v.Items[i+1:]...)
	return nil
}

// IsNewItem reports whether item is non-blank and not yet defined for the
// vehicle. It is false for an unknown vehicle, since nothing can be added to it.
func (s *Store) IsNewItem(vehicle, item string) bool {
	if item == "" {
		return false
	}
	v, ok := s.index[vehicle]
	if !ok {
		return false
	}
	return v.Item(item) < 0
}

// Vehicles returns the vehicle names in insertion order.
func (s *Store) Vehicles() []string {
	names := make([]string, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		names = append(names, v.Name)
	}
	return names
}

// Items returns the vehicle's item names in insertion order.
// An unknown vehicle has no items.
func (s *Store) Items(vehicle string) []string {
	v, ok := s.index[vehicle]
	if !ok {
		return []string{}
	}
	return v.ItemNames()
}

// Vehicle returns a copy of the named vehicle.
func (s *Store) Vehicle(name string) (models.Vehicle, error) {
	v, err := s.vehicle(name)
	if err != nil {
		return models.Vehicle{}, err
	}
	return v.Clone(), nil
}

// Item returns a copy of the named item.
func (s *Store) Item(vehicle, item string) (models.MaintenanceItem, error) {
	it, err := s.item(vehicle, item)
	if err != nil {
		return models.MaintenanceItem{}, err
	}
	return it.Clone(), nil
}

// FreqMiles returns the item's mileage interval, nil if unset.
func (s *Store) FreqMiles(vehicle, item string) (*int, error) {
	it, err := s.item(vehicle, item)
	if err != nil {
		return nil, err
	}
	return models.CopyInt(it.FreqMiles), nil
}

// FreqMonths returns the item's time interval in months, nil if unset.
func (s *Store) FreqMonths(vehicle, item string) (*int, error) {
	it, err := s.item(vehicle, item)
	if err != nil {
		return nil, err
	}
	return models.CopyInt(it.FreqMonths), nil
}

// LastMileage returns the mileage the maintenance was last done at, nil if never recorded.
func (s *Store) LastMileage(vehicle, item string) (*int, error) {
	it, err := s.item(vehicle, item)
	if err != nil {
		return nil, err
	}
	return models.CopyInt(it.LastMileage), nil
}

// LastDate returns the date the maintenance was last done on, nil if never recorded.
func (s *Store) LastDate(vehicle, item string) (*time.Time, error) {
	it, err := s.item(vehicle, item)
	if err != nil {
		return nil, err
	}
	return models.CopyTime(it.LastDate), nil
}

// VehicleNeedsMaintenance reports whether any of the vehicle's items is due at now.
func (s *Store) VehicleNeedsMaintenance(name string, now time.Time) (bool, error) {
	v, err := s.vehicle(name)
	if err != nil {
		return false, err
	}
	for _, it := range v.Items {
		if schedule.ItemDue(v.Mileage, it, now) {
			return true, nil
		}
	}
	return false, nil
}

// ItemNeedsMaintenance reports whether the item is due at now.
func (s *Store) ItemNeedsMaintenance(vehicle, item string, now time.Time) (bool, error) {
	v, err := s.vehicle(vehicle)
	if err != nil {
		return false, err
	}
	it, err := s.item(vehicle, item)
	if err != nil {
		return false, err
	}
	return schedule.ItemDue(v.Mileage, *it, now), nil
}

func (s *Store) vehicle(name string) (*models.Vehicle, error) {
	v, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVehicleNotFound, name)
	}
	return v, nil
}

func (s *Store) item(vehicle, item string) (*models.MaintenanceItem, error) {
	v, err := s.vehicle(vehicle)
	if err != nil {
		return nil, err
	}
	i := v.Item(item)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q on %q", ErrItemNotFound, item, vehicle)
	}
	return &v.Items[i], nil
}
