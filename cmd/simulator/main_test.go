package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/models"
)

func TestDailyMiles_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		n := dailyMiles(rng, 40)
		if n < 20 || n > 60 {
			t.Fatalf("daily miles out of range: %d", n)
		}
	}
	assert.Equal(t, 0, dailyMiles(rng, 0))
}

func TestSimulate_ReportsEachItemOnce(t *testing.T) {
	store := db.NewStore()
	require.NoError(t, store.AddVehicle("Civic", 9900))
	require.NoError(t, store.AddVehicle("Jeep", 50000))
	require.NoError(t, store.PutItem("Civic", models.MaintenanceItem{Name: "Oil", FreqMiles: models.Int(10000)}))
	require.NoError(t, store.PutItem("Jeep", models.MaintenanceItem{Name: "Oil", FreqMiles: models.Int(3000)}))

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	events := simulate(store, Settings{Days: 30, DailyMiles: 20, Start: start}, rand.New(rand.NewSource(7)))

	require.Len(t, events, 1, "the Jeep was already due")
	assert.Equal(t, "Civic", events[0].Vehicle)
	assert.Equal(t, "Oil", events[0].Item)
	assert.Greater(t, events[0].Mileage, 10000)
	assert.LessOrEqual(t, events[0].Day, 11)

	m, err := store.Mileage("Civic")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m, 9900+30*10)
}

func TestSimulate_DateBasedItems(t *testing.T) {
	store := db.NewStore()
	require.NoError(t, store.AddVehicle("Miata", 1000))
	last := models.Date(2024, time.January, 31)
	require.NoError(t, store.PutItem("Miata", models.MaintenanceItem{Name: "Inspection", FreqMonths: models.Int(1), LastDate: &last}))

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	events := simulate(store, Settings{Days: 60, DailyMiles: 0, Start: start}, rand.New(rand.NewSource(1)))

	require.Len(t, events, 1)
	assert.Equal(t, models.Date(2024, time.February, 29), models.DateOf(events[0].Date))
	assert.Equal(t, 28, events[0].Day)
}

func TestEnvInt(t *testing.T) {
	t.Setenv("SIM_DAYS", "90")
	assert.Equal(t, 90, envInt("SIM_DAYS", 365))

	t.Setenv("SIM_DAYS", "ninety")
	assert.Equal(t, 365, envInt("SIM_DAYS", 365))

	t.Setenv("SIM_DAYS", "-5")
	assert.Equal(t, 365, envInt("SIM_DAYS", 365))
}
