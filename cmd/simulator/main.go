package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/config"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/session"
)

// DueEvent records the day an item first became due during a simulation.
type DueEvent struct {
	Day     int
	Date    time.Time
	Vehicle string
	Item    string
	Mileage int
}

// Settings controls a simulation run.
type Settings struct {
	Days       int
	DailyMiles int
	Start      time.Time
}

// dailyMiles returns a distance within 50% of mean.
func dailyMiles(rng *rand.Rand, mean int) int {
	if mean <= 0 {
		return 0
	}
	return mean/2 + rng.Intn(mean+1)
}

// dueSet returns the vehicle/item pairs that are due at now.
func dueSet(store *db.Store, now time.Time) map[[2]string]bool {
	due := make(map[[2]string]bool)
	for _, v := range store.Vehicles() {
		for _, it := range store.Items(v) {
			if ok, _ := store.ItemNeedsMaintenance(v, it, now); ok {
				due[[2]string{v, it}] = true
			}
		}
	}
	return due
}

// simulate drives every vehicle in store for the configured number of days
// and returns the items that became due along the way, in order. Items that
// were already due at the start are not reported.
func simulate(store *db.Store, cfg Settings, rng *rand.Rand) []DueEvent {
	start := time.Date(cfg.Start.Year(), cfg.Start.Month(), cfg.Start.Day(), 12, 0, 0, 0, cfg.Start.Location())
	seen := dueSet(store, start)
	log.WithField("already_due", len(seen)).Info("Starting state")

	var events []DueEvent
	for day := 1; day <= cfg.Days; day++ {
		now := start.AddDate(0, 0, day)
		for _, v := range store.Vehicles() {
			mileage, err := store.Mileage(v)
			if err != nil {
				continue
			}
			mileage += dailyMiles(rng, cfg.DailyMiles)
			if err := store.SetMileage(v, mileage); err != nil {
				log.WithError(err).WithField("vehicle", v).Error("Failed to update mileage")
				continue
			}
			for _, it := range store.Items(v) {
				key := [2]string{v, it}
				if seen[key] {
					continue
				}
				if due, _ := store.ItemNeedsMaintenance(v, it, now); due {
					seen[key] = true
					ev := DueEvent{Day: day, Date: now, Vehicle: v, Item: it, Mileage: mileage}
					events = append(events, ev)
					log.WithFields(log.Fields{
						"day":     day,
						"date":    now.Format("2006-01-02"),
						"vehicle": session.DisplayName(v),
						"item":    session.DisplayName(it),
						"mileage": mileage,
					}).Info("Maintenance due")
				}
			}
		}
	}
	return events
}

func envInt(name string, def int) int {
	if val := os.Getenv(name); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
		log.WithField(name, val).Warn("Ignoring invalid value")
	}
	return def
}

func main() {
	cfg, err := config.Load(os.Getenv("CARMAINT_CONFIG"))
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	settings := Settings{
		Days:       envInt("SIM_DAYS", 365),
		DailyMiles: envInt("SIM_DAILY_MILES", 30),
		Start:      time.Now(),
	}
	seed := int64(envInt("SIM_SEED", int(time.Now().UnixNano()%1e9)))
	output := os.Getenv("SIM_OUTPUT")

	log.WithFields(log.Fields{
		"data_file":   cfg.DataFile,
		"days":        settings.Days,
		"daily_miles": settings.DailyMiles,
		"seed":        seed,
	}).Info("Starting maintenance simulation")

	store, err := db.LoadSnapshot(cfg.DataFile)
	if err != nil {
		log.WithError(err).Error("No fleet to simulate. Add vehicles with carmaint first.")
		return
	}
	if len(store.Vehicles()) == 0 {
		log.Error("The snapshot has no vehicles. Exiting.")
		return
	}

	events := simulate(store, settings, rand.New(rand.NewSource(seed)))
	log.WithField("items_due", len(events)).Info("Simulation complete")

	if output == "" {
		return
	}
	if output == cfg.DataFile {
		log.WithField("output", output).Error("Refusing to overwrite the primary snapshot")
		return
	}
	if err := db.SaveSnapshot(output, store); err != nil {
		log.WithError(err).Error("Failed to save simulated fleet")
		return
	}
	log.WithField("output", output).Info("Saved simulated fleet")
}
