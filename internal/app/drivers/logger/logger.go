package logger

import (
	"lisagent-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

func NewLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
		} else {
			log.Info("Failed to log to file, using default stderr")
		}
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log
}
