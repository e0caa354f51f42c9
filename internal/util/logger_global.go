package util

import (
	"sync"
)

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// InitLogger initializes the global logger instance with debug mode support
func InitLogger(logLevel, logFile string, debugToConsole bool) {
	loggerOnce.Do(func() {
		globalLogger = NewLogger(logLevel, logFile, debugToConsole)
	})
}

// LogDebug logs a debug message via the global logger
func LogDebug(msg string) {
	if globalLogger != nil {
		globalLogger.Debug(msg)
	}
}

// LogDebugf logs a formatted debug message via the global logger
func LogDebugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

// LogInfo logs an info message via the global logger
func LogInfo(msg string) {
	if globalLogger != nil {
		globalLogger.Info(msg)
	}
}

// LogInfof logs a formatted info message via the global logger
func LogInfof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

// LogWarn logs a warning message via the global logger
func LogWarn(msg string) {
	if globalLogger != nil {
		globalLogger.Warn(msg)
	}
}

// LogWarnf logs a formatted warning message via the global logger
func LogWarnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

// LogError logs an error message via the global logger
func LogError(msg string) {
	if globalLogger != nil {
		globalLogger.Error(msg)
	}
}

// LogErrorf logs a formatted error message via the global logger
func LogErrorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	}
}
