// Package fileperms provides semantic file permission constants
// to avoid hardcoded octal values that trigger gosec warnings.
package fileperms

import "os"

const (
	// ConfigDir is for configuration directories (rwxr-x---)
	ConfigDir os.FileMode = 0o750

	// ConfigFile is for configuration files (rw-r-----)
	ConfigFile os.FileMode = 0o640

	// LogDir is for log directories (rwxr-x---)
	LogDir os.FileMode = 0o750

	// LogFile is for log files (rw-r-----)
	LogFile os.FileMode = 0o640
)

// IsSecure checks if the given file mode is free of group and world access
func IsSecure(mode os.FileMode) bool {
	return mode.Perm()&0o077 == 0
}
