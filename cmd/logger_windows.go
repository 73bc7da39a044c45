//go:build windows

package cmd

import (
	"github.com/traykeep/traykeep/common"
	"github.com/traykeep/traykeep/pkg/logger"
)

var newEventLogger = func(source string) (logger.Logger, error) {
	el, err := logger.NewEventLogger(source)
	if err != nil {
		return nil, err
	}
	return el, nil
}

// withEventLog adds the Event Log backend, keeping console logging alone
// when the source cannot be opened.
func withEventLog(console logger.Logger) logger.Logger {
	el, err := newEventLogger(common.EventSource)
	if err != nil {
		console.Warning("event log unavailable: %v", err)
		return console
	}
	return logger.NewMultiLogger(console, el)
}
