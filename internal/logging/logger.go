// Package logging configures the global zerolog logger for cfurl.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"miguel.build/cfurl/internal/fileperms"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// File enables a rotated file sink when non-empty
	File string

	// MaxSizeMB is the maximum size of the log file before rotation
	MaxSizeMB int

	// MaxBackups is the number of rotated files to retain
	MaxBackups int

	// MaxAgeDays is the number of days to retain rotated files
	MaxAgeDays int
}

// DefaultConfig returns the default logger configuration. The console
// sink stays at warn so normal CLI runs print nothing but their output.
func DefaultConfig() *Config {
	return &Config{
		Level:      "warn",
		File:       "",
		MaxSizeMB:  5,
		MaxBackups: 2,
		MaxAgeDays: 7,
	}
}

// Init initializes the global logger with the given configuration
func Init(config *Config) {
	once.Do(func() {
		logger = newLogger(config)
		log.Logger = logger
	})
}

// GetLogger returns the global logger instance
func GetLogger() *zerolog.Logger {
	once.Do(func() {
		logger = newLogger(DefaultConfig())
		log.Logger = logger
	})
	return &logger
}

func newLogger(config *Config) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}}

	if config.File != "" {
		logDir := filepath.Dir(config.File)
		if err := os.MkdirAll(logDir, fileperms.LogDir); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   config.File,
				MaxSize:    config.MaxSizeMB,
				MaxBackups: config.MaxBackups,
				MaxAge:     config.MaxAgeDays,
				Compress:   true,
			})
		}
	}

	var writer io.Writer = writers[0]
	if len(writers) > 1 {
		writer = io.MultiWriter(writers...)
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.WarnLevel
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Debugf logs a formatted debug message
func Debugf(format string, v ...interface{}) {
	GetLogger().Debug().Msgf(format, v...)
}

// Infof logs a formatted info message
func Infof(format string, v ...interface{}) {
	GetLogger().Info().Msgf(format, v...)
}

// Warnf logs a formatted warning message
func Warnf(format string, v ...interface{}) {
	GetLogger().Warn().Msgf(format, v...)
}

// Errorf logs a formatted error message
func Errorf(format string, v ...interface{}) {
	GetLogger().Error().Msgf(format, v...)
}
