package store

import (
	"errors"
	"runtime"

	"github.com/addin-tools/addin/internal/profiles"
)

// Entry is one (application, manifest-location) registration.
type Entry struct {
	App  profiles.Application `json:"application"`
	Path string               `json:"path"`
}

// Store is the registration capability. An empty application passed to
// List or Remove means "every known application".
type Store interface {
	Add(app profiles.Application, manifestPath string) error
	List(app profiles.Application) ([]Entry, error)
	Remove(app profiles.Application, manifestPath string) error
}

// Failures are user-environment problems, never retried here.
var (
	// ErrConflict reports that a different file with the same name is
	// already registered; the user must remove it first.
	ErrConflict = errors.New("a different manifest with the same name is already registered")

	// ErrNothingRemoved reports that a store-wide remove matched no entry.
	ErrNothingRemoved = errors.New("no registered manifest matched the given path")

	// ErrHostNotInstalled reports that the Office registry root is
	// absent, meaning no host application is installed.
	ErrHostNotInstalled = errors.New("Office does not appear to be installed")

	// ErrMissingArgument reports that a required manifest path was empty.
	ErrMissingArgument = errors.New("a manifest path is required")

	// ErrBackingStore wraps raw diagnostics from the registry shell.
	ErrBackingStore = errors.New("registry access failed")
)

// New selects the backing strategy for the current platform.
func New() Store {
	if runtime.GOOS == "windows" {
		return NewRegistryStore(NewPowerShell())
	}
	return NewDirStore()
}
