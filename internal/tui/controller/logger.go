package controller

import (
	"kubeview/internal/tui/model"
	"kubeview/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogInfo logs an informational message through pkg/logging; it reaches the
// activity log via the TUI channel.
func LogInfo(format string, a ...interface{}) {
	logging.Info(controllerSubsystem, format, a...)
}

// LogDebug logs only while the model is in debug mode.
func LogDebug(m *model.Model, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(controllerSubsystem, format, a...)
	}
}

func LogWarn(format string, a ...interface{}) {
	logging.Warn(controllerSubsystem, format, a...)
}

func LogError(err error, format string, a ...interface{}) {
	logging.Error(controllerSubsystem, err, format, a...)
}
