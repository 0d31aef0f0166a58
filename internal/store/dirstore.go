package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/addin-tools/addin/internal/branding"
	"github.com/addin-tools/addin/internal/profiles"
)

// DirStore registers manifests by hard-linking them into a
// per-application sideload directory. Hard links mean edits to the
// source manifest are picked up without re-registering.
type DirStore struct{}

// NewDirStore returns the directory-backed strategy.
func NewDirStore() *DirStore {
	return &DirStore{}
}

// appDir returns the sideload directory for one application. The
// ADDIN_SIDELOAD_DIR environment variable overrides the platform
// default, which tests rely on.
func appDir(app profiles.Application) (string, error) {
	if v := os.Getenv(branding.EnvVar("SIDELOAD_DIR")); v != "" {
		return filepath.Join(v, string(app)), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	if runtime.GOOS == "darwin" {
		_, p, err := profiles.Lookup(string(app))
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Containers", p.Container, "Data", "Documents", "wef"), nil
	}

	return filepath.Join(home, branding.HomeDir(), "wef", string(app)), nil
}

// Add hard-links the manifest into the application's sideload directory
// under its own basename. Registering the same file twice is a no-op;
// a different file already occupying the name is a conflict the user
// must resolve.
func (s *DirStore) Add(app profiles.Application, manifestPath string) error {
	src, err := resolvePath(manifestPath)
	if err != nil {
		return fmt.Errorf("resolving manifest path %s: %w", manifestPath, err)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", src, err)
	}

	dir, err := appDir(app)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating sideload directory %s: %w", dir, err)
	}

	dest := filepath.Join(dir, filepath.Base(src))
	if destInfo, err := os.Stat(dest); err == nil {
		if os.SameFile(srcInfo, destInfo) {
			return nil
		}
		existing, _ := resolvePath(dest)
		return fmt.Errorf("%w: %s (remove it first)", ErrConflict, existing)
	}

	if err := os.Link(src, dest); err != nil {
		return fmt.Errorf("linking %s into %s: %w", src, dir, err)
	}
	return nil
}

// List enumerates registrations for one application, or across every
// sideloadable application when app is empty.
func (s *DirStore) List(app profiles.Application) ([]Entry, error) {
	apps := []profiles.Application{app}
	if app == "" {
		apps = profiles.Sideloadable()
	}

	var entries []Entry
	for _, a := range apps {
		dir, err := appDir(a)
		if err != nil {
			return nil, err
		}
		names, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading sideload directory %s: %w", dir, err)
		}
		for _, de := range names {
			if de.IsDir() || isJunk(de.Name()) {
				continue
			}
			p := filepath.Join(dir, de.Name())
			resolved, err := resolvePath(p)
			if err != nil {
				resolved = p
			}
			entries = append(entries, Entry{App: a, Path: resolved})
		}
	}
	return entries, nil
}

// Remove unlinks every registered entry that resolves to the same file
// as manifestPath. With an application the scan is scoped to it and a
// miss is silent; a store-wide scan that removes nothing is an error.
func (s *DirStore) Remove(app profiles.Application, manifestPath string) error {
	target := manifestPath
	var targetInfo os.FileInfo
	if resolved, err := resolvePath(manifestPath); err == nil {
		target = resolved
		targetInfo, _ = os.Stat(resolved)
	} else if abs, err := filepath.Abs(manifestPath); err == nil {
		target = abs
	}

	apps := []profiles.Application{app}
	if app == "" {
		apps = profiles.Sideloadable()
	}

	removed := 0
	for _, a := range apps {
		dir, err := appDir(a)
		if err != nil {
			return err
		}
		names, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("reading sideload directory %s: %w", dir, err)
		}
		for _, de := range names {
			if de.IsDir() || isJunk(de.Name()) {
				continue
			}
			p := filepath.Join(dir, de.Name())
			if !matchesTarget(p, target, targetInfo) {
				continue
			}
			if err := os.Remove(p); err != nil {
				return fmt.Errorf("unlinking %s: %w", p, err)
			}
			removed++
		}
	}

	if app == "" && removed == 0 {
		return fmt.Errorf("%w: %s", ErrNothingRemoved, manifestPath)
	}
	return nil
}

// matchesTarget compares a registered entry against the removal target
// by resolved real path, falling back to device+inode identity when the
// names differ but the underlying file is the same.
func matchesTarget(entryPath, target string, targetInfo os.FileInfo) bool {
	resolved, err := resolvePath(entryPath)
	if err == nil && resolved == target {
		return true
	}
	if targetInfo == nil {
		return false
	}
	entryInfo, err := os.Stat(entryPath)
	if err != nil {
		return false
	}
	return os.SameFile(entryInfo, targetInfo)
}

// resolvePath returns the absolute, symlink-free form of a path.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// isJunk filters filesystem noise out of directory listings.
func isJunk(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "~$") ||
		strings.EqualFold(name, "Thumbs.db")
}
