package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to w (os.Stderr when nil) at the given
// level, using the "json" or "text" formatter.
func New(level, format string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	if format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}

