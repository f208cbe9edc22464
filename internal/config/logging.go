package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/pflag"
)

type Logging struct {
	Level string `schema:"log_level"`
	File  string `schema:"log_file"`
}

func NewLogging() *Logging {
	level := logrus.WarnLevel
	if Development() {
		level = logrus.DebugLevel
	}
	return &Logging{Level: level.String()}
}

func (l *Logging) Flags(fs *pflag.FlagSet) {
	fs.String("log-level", l.Level, "log level (trace, debug, info, warn, error)")
	fs.String("log-file", l.File, "also write JSON logs to this rotated file")
}

func (l Logging) Validate() error {
	if _, err := logrus.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (l Logging) Fields() logrus.Fields {
	return logrus.Fields{
		"log_level": l.Level,
		"log_file":  l.File,
	}
}

// Apply configures log to write text to stderr and, when a file is set,
// JSON to a size-rotated file.
func (l Logging) Apply(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: Development()})

	if l.File == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   l.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", l.File, err)
	}
	log.AddHook(hook)
	return nil
}
