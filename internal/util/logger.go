package util

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus logger. A driver logs to
// stderr and leaves file handling to the embedding program.
func InitLogger(level string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	return nil
}
