package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-maintenance/internal/models"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"same day next month", models.Date(2024, time.January, 15), 1, models.Date(2024, time.February, 15)},
		{"clamps to end of february", models.Date(2023, time.January, 31), 1, models.Date(2023, time.February, 28)},
		{"clamps in leap year too", models.Date(2024, time.January, 31), 1, models.Date(2024, time.February, 29)},
		{"original day restored after short month", models.Date(2023, time.January, 31), 2, models.Date(2023, time.March, 31)},
		{"thirty day month", models.Date(2023, time.March, 31), 1, models.Date(2023, time.April, 30)},
		{"twelve months", models.Date(2023, time.March, 10), 12, models.Date(2024, time.March, 10)},
		{"across year end", models.Date(2023, time.December, 15), 1, models.Date(2024, time.January, 15)},
		{"first of month", models.Date(2023, time.June, 1), 3, models.Date(2023, time.September, 1)},
		{"zero months", models.Date(2023, time.January, 31), 0, models.Date(2023, time.January, 31)},
		{"negative months", models.Date(2023, time.January, 31), -2, models.Date(2023, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestDueByMileage(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    *int
		freq    *int
		want    bool
	}{
		{"never recorded past interval", 15000, nil, models.Int(10000), true},
		{"never recorded within interval", 9000, nil, models.Int(10000), false},
		{"never recorded at interval", 10000, nil, models.Int(10000), false},
		{"zero last mileage same as unset", 15000, models.Int(0), models.Int(10000), true},
		{"recorded within interval", 25000, models.Int(15000), models.Int(10000), false},
		{"recorded past interval", 25001, models.Int(15000), models.Int(10000), true},
		{"unset frequency", 999999, models.Int(1), nil, false},
		{"zero frequency", 999999, nil, models.Int(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueByMileage(tt.current, tt.last, tt.freq))
		})
	}
}

func TestDueByDate(t *testing.T) {
	now := time.Date(2024, time.October, 14, 9, 30, 0, 0, time.UTC)
	sixMonthsAgo := models.Date(2024, time.April, 14)

	assert.True(t, DueByDate(now, &sixMonthsAgo, models.Int(3)))
	assert.False(t, DueByDate(now, &sixMonthsAgo, models.Int(12)))
	assert.False(t, DueByDate(now, nil, models.Int(3)), "no last date")
	assert.False(t, DueByDate(now, &sixMonthsAgo, nil), "no frequency")
	assert.False(t, DueByDate(now, &sixMonthsAgo, models.Int(0)), "zero frequency is untracked")
}

func TestDueByDate_ThresholdDay(t *testing.T) {
	last := models.Date(2024, time.April, 14)
	freq := models.Int(6)

	assert.False(t, DueByDate(time.Date(2024, time.October, 13, 23, 59, 0, 0, time.UTC), &last, freq))
	assert.False(t, DueByDate(time.Date(2024, time.October, 14, 0, 0, 0, 0, time.UTC), &last, freq))
	assert.True(t, DueByDate(time.Date(2024, time.October, 14, 0, 0, 1, 0, time.UTC), &last, freq))
}

func TestDueByDate_UsesCallerLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	last := models.Date(2024, time.January, 10)
	// 01:00 on Feb 10 in UTC+9 is still Feb 9 in UTC.
	now := time.Date(2024, time.February, 10, 1, 0, 0, 0, loc)

	assert.True(t, DueByDate(now, &last, models.Int(1)))
}

func TestItemDue(t *testing.T) {
	now := time.Date(2024, time.October, 14, 12, 0, 0, 0, time.UTC)
	recent := models.Date(2024, time.September, 1)

	byMileage := models.MaintenanceItem{Name: "Oil", FreqMiles: models.Int(5000), FreqMonths: models.Int(6), LastMileage: models.Int(10000), LastDate: &recent}
	assert.True(t, ItemDue(15001, byMileage, now))
	assert.False(t, ItemDue(15000, byMileage, now))

	old := models.Date(2023, time.January, 1)
	byDate := models.MaintenanceItem{Name: "Wipers", FreqMonths: models.Int(12), LastDate: &old}
	assert.True(t, ItemDue(0, byDate, now))

	untracked := models.MaintenanceItem{Name: "Notes"}
	assert.False(t, ItemDue(1000000, untracked, now))
}

func TestNextDue(t *testing.T) {
	last := models.Date(2023, time.January, 31)
	th := NextDue(models.MaintenanceItem{
		Name:        "Oil",
		FreqMiles:   models.Int(5000),
		FreqMonths:  models.Int(1),
		LastMileage: models.Int(12000),
		LastDate:    &last,
	})
	require.NotNil(t, th.Mileage)
	require.NotNil(t, th.Date)
	assert.Equal(t, 17000, *th.Mileage)
	assert.Equal(t, models.Date(2023, time.February, 28), *th.Date)

	empty := NextDue(models.MaintenanceItem{Name: "Oil", FreqMiles: models.Int(0)})
	assert.Nil(t, empty.Mileage)
	assert.Nil(t, empty.Date)

	fresh := NextDue(models.MaintenanceItem{Name: "Oil", FreqMiles: models.Int(3000)})
	require.NotNil(t, fresh.Mileage)
	assert.Equal(t, 3000, *fresh.Mileage)
}
