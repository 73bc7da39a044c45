//go:build windows

package common

// DefaultInterpreter is pythonw so that the tray runs without a console window.
const DefaultInterpreter = "pythonw"
