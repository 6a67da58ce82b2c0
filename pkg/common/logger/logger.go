package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// base carries fields attached to every entry, such as the service name.
var base logrus.Fields

func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	if os.Getenv("LOG_FORMAT") == "text" {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Log.SetLevel(logLevel)

	base = logrus.Fields{}
	if svc := os.Getenv("SERVICE_NAME"); svc != "" {
		base["service"] = svc
	}
}

func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithFields(base).WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(base).WithFields(fields)
}
