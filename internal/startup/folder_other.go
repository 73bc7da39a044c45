//go:build !windows

package startup

// Folder has no equivalent outside Windows; pass the folder explicitly.
func Folder() (string, error) {
	return "", ErrNoStartupFolder
}
