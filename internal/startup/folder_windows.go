//go:build windows

package startup

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Folder returns the current user's Startup folder
// (%APPDATA%\Microsoft\Windows\Start Menu\Programs\Startup).
func Folder() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Startup, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoStartupFolder, err)
	}
	return dir, nil
}
