package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the standard logrus logger. JSON output is used in
// production or when LOG_FORMAT=json.
func InitLogger(cfg *Config) *logrus.Logger {
	log := logrus.StandardLogger()

	logLevel := cfg.LogLevel
	if logLevel == "" {
		if IsDevelopment() {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}
	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if IsProduction() || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	log.SetOutput(os.Stdout)
	return log
}
