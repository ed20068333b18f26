// Package logger configures the zerolog global logger used across the quote service.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line.
const ServiceName = "container-quote"

// Init sets the global level and output. Unknown or empty levels fall back
// to info; pretty switches to the console writer for local runs.
func Init(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Str("service", ServiceName).Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("service", ServiceName).Logger()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log.Logger
}

// For returns the global logger tagged with a component name, such as
// "catalog", "scenario" or "auth".
func For(component string) *zerolog.Logger {
	l := log.Logger.With().Str("component", component).Logger()
	return &l
}
