package models

import (
	"time"
)

// MaintenanceItem represents a recurring maintenance task for a vehicle.
// A nil field is unset: the item is not tracked on that dimension, or the
// maintenance has not been recorded yet.
type MaintenanceItem struct {
	Name        string     `bson:"name" json:"name" yaml:"name"`
	FreqMiles   *int       `bson:"freq_miles,omitempty" json:"freq_miles,omitempty" yaml:"freq_miles,omitempty"`
	FreqMonths  *int       `bson:"freq_months,omitempty" json:"freq_months,omitempty" yaml:"freq_months,omitempty"`
	LastMileage *int       `bson:"last_mileage,omitempty" json:"last_mileage,omitempty" yaml:"last_mileage,omitempty"`
	LastDate    *time.Time `bson:"last_date,omitempty" json:"last_date,omitempty" yaml:"last_date,omitempty"`
}

// Clone returns a copy that shares no pointers with m.
func (m MaintenanceItem) Clone() MaintenanceItem {
	return MaintenanceItem{
		Name:        m.Name,
		FreqMiles:   CopyInt(m.FreqMiles),
		FreqMonths:  CopyInt(m.FreqMonths),
		LastMileage: CopyInt(m.LastMileage),
		LastDate:    CopyTime(m.LastDate),
	}
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// CopyInt returns a new pointer holding *p, or nil.
func CopyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CopyTime returns a new pointer holding *p, or nil.
func CopyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Date returns the calendar day as midnight UTC, the form dates are stored in.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar day in t's location and returns it as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}
