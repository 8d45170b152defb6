package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

var appLogger *logrus.Logger

// InitLogger menyiapkan logger aplikasi (JSON ke stdout).
func InitLogger() *logrus.Logger {
	appLogger = logrus.New()
	appLogger.SetFormatter(&logrus.JSONFormatter{})
	appLogger.SetOutput(os.Stdout)

	switch GetEnvOr("LOG_LEVEL", "info") {
	case "debug":
		appLogger.SetLevel(logrus.DebugLevel)
	case "warn":
		appLogger.SetLevel(logrus.WarnLevel)
	case "error":
		appLogger.SetLevel(logrus.ErrorLevel)
	default:
		appLogger.SetLevel(logrus.InfoLevel)
	}
	return appLogger
}

func GetLogger() *logrus.Logger {
	if appLogger == nil {
		return InitLogger()
	}
	return appLogger
}

// LogError mencatat error dengan konteks modul/fungsi (dipakai controller & service).
func LogError(module, funcName string, data any, err error) {
	fields := logrus.Fields{"module": module, "funcName": funcName}
	if data != nil {
		fields["data"] = data
	}
	GetLogger().WithFields(fields).Error(err.Error())
}
