// Package platform maps the host operating system to the properties key that
// holds its config location, and resolves that location to a path.
package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/eugenenazirov/propsload/internal/properties"
)

// OS identifies a platform family with its own config location.
type OS string

const (
	Windows OS = "windows"
	MacOS   OS = "mac"
	Linux   OS = "linux"
)

var (
	// ErrUnsupported is returned for hosts without a config location entry.
	ErrUnsupported = errors.New("unsupported operating system")
	// ErrLocationMissing is returned when the locator has no usable entry for the OS.
	ErrLocationMissing = errors.New("config location not defined")
)

// Current detects the platform of the running binary.
func Current() (OS, error) {
	return Detect(runtime.GOOS)
}

// Detect maps a GOOS value to a platform family. Unknown Unix-likes are
// treated as Linux; Android has no config location.
func Detect(goos string) (OS, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "darwin", "ios":
		return MacOS, nil
	case "android":
		return "", fmt.Errorf("%w: %s", ErrUnsupported, goos)
	default:
		return Linux, nil
	}
}

// Parse reads a user supplied platform name.
func Parse(name string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "win":
		return Windows, nil
	case "mac", "macos", "darwin", "osx":
		return MacOS, nil
	case "linux":
		return Linux, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// LocationKey returns the locator key naming this platform's config path.
func (o OS) LocationKey() string {
	return "config.location." + string(o)
}

// ResolveConfigPath reads the platform's location from locator and returns it
// as a clean absolute path. Relative locations are taken from baseDir.
func ResolveConfigPath(locator properties.Tree, o OS, baseDir string) (string, error) {
	key := o.LocationKey()
	location, ok := locator.String(key)
	if !ok || location == "" {
		return "", fmt.Errorf("%w: %s", ErrLocationMissing, key)
	}

	if !filepath.IsAbs(location) {
		location = filepath.Join(baseDir, location)
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", location, err)
	}
	return abs, nil
}
