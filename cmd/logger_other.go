//go:build !windows

package cmd

import "github.com/traykeep/traykeep/pkg/logger"

func withEventLog(console logger.Logger) logger.Logger {
	console.Warning("event log is only available on Windows")
	return console
}
