package logger

import (
	"hospital-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger used by standalone command line tools, which print to the
// operator's terminal rather than to the service log pipeline.
func NewLogrusLogger(driverConfig *config.DriverConfig, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
