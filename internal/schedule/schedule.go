// Package schedule decides when a maintenance item is due.
//
// An item is due when the vehicle has been driven more than the item's
// mileage interval since the maintenance was last performed, or when the
// current time is past the last-performed date plus the item's interval in
// months. Unset values and zero intervals never make an item due.
package schedule

import (
	"time"

	"github.com/ukydev/car-maintenance/internal/models"
)

// Threshold is the point past which an item becomes due.
// A nil field means the item is not tracked on that dimension.
type Threshold struct {
	Mileage *int       `json:"mileage,omitempty" yaml:"mileage,omitempty"`
	Date    *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// AddMonths advances start by the given number of calendar months.
//
// Each month is walked a day at a time: first into the following month, then
// forward to the starting day-of-month, stopping on the last day of the month
// when that day does not exist in it. The starting day is remembered across
// steps, so Jan 31 plus two months is Mar 31 even though the intermediate step
// lands on Feb 28. Non-positive counts return start unchanged.
func AddMonths(start time.Time, months int) time.Time {
	day := start.Day()
	month := start.Month()
	t := start
	for ; months > 0; months-- {
		t = t.AddDate(0, 0, 1)
		for t.Month() == month {
			t = t.AddDate(0, 0, 1)
		}
		month = t.Month()
		for t.Day() < day {
			next := t.AddDate(0, 0, 1)
			if next.Month() != month {
				break
			}
			t = next
		}
	}
	return t
}

// DueByMileage reports whether current has passed the mileage interval.
// A missing or zero last mileage counts from zero.
func DueByMileage(current int, lastMileage, freqMiles *int) bool {
	freq := valueOf(freqMiles)
	if freq == 0 {
		return false
	}
	last := valueOf(lastMileage)
	if last == 0 {
		return current > freq
	}
	return current > last+freq
}

// DueByDate reports whether now is past lastDate plus freqMonths months.
// The threshold is midnight of the computed day in now's location.
func DueByDate(now time.Time, lastDate *time.Time, freqMonths *int) bool {
	threshold, ok := dateThreshold(lastDate, freqMonths, now.Location())
	if !ok {
		return false
	}
	return now.After(threshold)
}

// ItemDue reports whether item is due for a vehicle with the given mileage.
func ItemDue(current int, item models.MaintenanceItem, now time.Time) bool {
	return DueByMileage(current, item.LastMileage, item.FreqMiles) ||
		DueByDate(now, item.LastDate, item.FreqMonths)
}

// NextDue returns the mileage and date past which item becomes due.
func NextDue(item models.MaintenanceItem) Threshold {
	var th Threshold
	if freq := valueOf(item.FreqMiles); freq != 0 {
		th.Mileage = models.Int(valueOf(item.LastMileage) + freq)
	}
	if d, ok := dateThreshold(item.LastDate, item.FreqMonths, time.UTC); ok {
		th.Date = &d
	}
	return th
}

func dateThreshold(lastDate *time.Time, freqMonths *int, loc *time.Location) (time.Time, bool) {
	if lastDate == nil || valueOf(freqMonths) == 0 {
		return time.Time{}, false
	}
	y, m, d := AddMonths(models.DateOf(*lastDate), *freqMonths).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), true
}

func valueOf(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
