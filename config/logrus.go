package config

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

// PrintLogInfo records the outcome of one handler invocation. A nil
// `username` means the request never reached authentication.
func PrintLogInfo(username *string, statusCode int, functionName string) {
	user := "Unknown"
	if username != nil {
		user = *username
	}

	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"user":    user,
		"handler": functionName,
		"status":  statusCode,
	})

	switch {
	case statusCode >= http.StatusInternalServerError:
		entry.Error(http.StatusText(statusCode))
	case statusCode >= http.StatusBadRequest:
		entry.Warn(http.StatusText(statusCode))
	default:
		entry.Info(http.StatusText(statusCode))
	}
}
