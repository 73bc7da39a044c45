//go:build !windows

package common

// DefaultInterpreter is the interpreter looked up on PATH outside Windows.
const DefaultInterpreter = "python3"
