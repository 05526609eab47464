package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// invalidNameChars are rejected in AppName and FileName. Besides the path separators
// this contains the characters Windows does not allow in file names, so a
// configuration that works on one OS works on all of them.
const invalidNameChars = "/\\\x00<>:\"|?*"

// ValidateName checks that name can be used as a single path element.
// field is only used for the error message.
func ValidateName(field, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return NewError(RetCInvalidConfig, fmt.Sprintf("%s must not be empty", field))
	case name == "." || name == "..":
		return NewError(RetCInvalidConfig, fmt.Sprintf("%s %q is not a valid path element", field, name))
	case strings.ContainsAny(name, invalidNameChars):
		return NewError(RetCInvalidConfig, fmt.Sprintf("%s %q must not contain any of %q", field, name, invalidNameChars))
	}
	return nil
}

// DefaultAppName returns the name of the running executable without directory and ".exe" suffix.
// If the executable path cannot be determined, the program name from os.Args is used.
func DefaultAppName() string {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		if len(os.Args) == 0 {
			return "pkv"
		}
		exe = os.Args[0]
	}
	return appNameFromExecutable(exe)
}

// appNameFromExecutable derives the app name from an executable path. Only a trailing
// ".exe" is removed, other dots are part of the name ("my.tool" stays "my.tool").
func appNameFromExecutable(exe string) string {
	name := filepath.Base(strings.ReplaceAll(exe, "\\", "/"))
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	if ValidateName("app name", name) != nil {
		return "pkv"
	}
	return name
}

// ResolvePath joins the parts of the backing file path: <dataDir>/<appName>/<fileName>.
func ResolvePath(dataDir, appName, fileName string) string {
	return filepath.Join(dataDir, appName, fileName)
}
