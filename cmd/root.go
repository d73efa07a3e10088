package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/car-maintenance/internal/config"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/logging"
	"github.com/ukydev/car-maintenance/internal/session"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries what every subcommand needs once the root command has set it up.
type app struct {
	configFile string
	dataFile   string
	backupFile string
	logLevel   string

	now     func() time.Time
	log     *logrus.Logger
	session *session.Session
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	root := &cobra.Command{
		Use:           "carmaint",
		Short:         "Track vehicle maintenance schedules",
		Long:          "carmaint keeps each vehicle's mileage and maintenance items\nand reports which items are due by mileage or by date.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configFile, "config", "", "Path to a TOML config file")
	f.StringVar(&a.dataFile, "data", "", "Primary snapshot file (overrides config)")
	f.StringVar(&a.backupFile, "backup-file", "", "Backup snapshot file (overrides config)")
	f.StringVar(&a.logLevel, "log-level", "", "Log level (overrides config)")

	root.AddCommand(
		newVehicleCmd(a),
		newMileageCmd(a),
		newItemCmd(a),
		newPerformCmd(a),
		newDueCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
	)
	return root
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.dataFile != "" {
		cfg.DataFile = a.dataFile
	}
	if a.backupFile != "" {
		cfg.BackupFile = a.backupFile
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.log, err = logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.session = session.Open(session.Paths{
		DataFile:   cfg.DataFile,
		BackupFile: cfg.BackupFile,
	}, db.FileSnapshots{}, a.log)
	return nil
}

// mutate runs fn and, if it succeeds, writes the store back to the primary
// snapshot the way a normal exit does.
func (a *app) mutate(fn func(*session.Session) error) error {
	if err := fn(a.session); err != nil {
		return err
	}
	return a.session.Save()
}
