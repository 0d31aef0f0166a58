package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/addin-tools/addin/internal/profiles"
)

// Registry locations. Sideloaded manifests are machine-wide on Windows:
// one Developer key serves every Office application.
const (
	officeRootKey = `HKCU:\SOFTWARE\Microsoft\Office`
	developerKey  = officeRootKey + `\16.0\WEF\Developer`

	// hostSentinel is emitted by the ensure preamble when the Office
	// root key is absent. Its presence in failure output distinguishes
	// "Office is not installed" from genuine registry errors.
	hostSentinel = "ADDIN_HOST_NOT_INSTALLED"

	shellTimeout = 30 * time.Second
)

// RegistryStore registers manifests as values under the WEF Developer
// key. Each value's name and data are both the absolute manifest path;
// the name==data convention is how the store recognizes its own entries
// among anything else that may occupy the key.
type RegistryStore struct {
	shell Shell
}

// NewRegistryStore returns the registry-backed strategy on top of the
// given shell, which tests substitute with a fake.
func NewRegistryStore(sh Shell) *RegistryStore {
	return &RegistryStore{shell: sh}
}

// ensurePreamble verifies the Office root key exists and creates the
// WEF\Developer key path if missing. Every operation runs it first.
const ensurePreamble = `if (-not (Test-Path '` + officeRootKey + `')) { Write-Error '` + hostSentinel + `'; exit 1 }
foreach ($k in @('` + officeRootKey + `\16.0\WEF', '` + developerKey + `')) {
  if (-not (Test-Path $k)) { New-Item -Path $k -Force | Out-Null }
}
`

// Add sets a value whose name and data are both the manifest path.
// Callers pass absolute paths; the CLI normalizes before calling.
func (s *RegistryStore) Add(app profiles.Application, manifestPath string) error {
	script := ensurePreamble +
		"Set-ItemProperty -LiteralPath " + psQuote(developerKey) +
		" -Name " + psQuote(manifestPath) + " -Value " + psQuote(manifestPath)
	_, err := s.run(script)
	return err
}

// List reads every value under the Developer key and keeps those whose
// name equals their data, case-insensitively. The registry store is
// application-agnostic, so the app argument only tags the results.
func (s *RegistryStore) List(app profiles.Application) ([]Entry, error) {
	script := ensurePreamble + `$key = Get-Item -LiteralPath ` + psQuote(developerKey) + `
foreach ($name in $key.Property) {
  Write-Output ("{0}` + "`t" + `{1}" -f $name, $key.GetValue($name))
}
`
	out, err := s.run(script)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		name, value, ok := strings.Cut(line, "\t")
		if !ok || !strings.EqualFold(name, value) {
			continue
		}
		entries = append(entries, Entry{App: app, Path: name})
	}
	return entries, nil
}

// Remove deletes the value named by the manifest path. Deleting a value
// that does not exist is success.
func (s *RegistryStore) Remove(app profiles.Application, manifestPath string) error {
	if strings.TrimSpace(manifestPath) == "" {
		return ErrMissingArgument
	}
	script := ensurePreamble +
		"Remove-ItemProperty -LiteralPath " + psQuote(developerKey) +
		" -Name " + psQuote(manifestPath) + " -ErrorAction SilentlyContinue"
	_, err := s.run(script)
	return err
}

// run executes a script and translates failures: output carrying the
// sentinel means the host is not installed, anything else surfaces as a
// backing-store error with the raw diagnostic.
func (s *RegistryStore) run(script string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), shellTimeout)
	defer cancel()

	out, err := s.shell.Run(ctx, script)
	if err == nil {
		return out, nil
	}
	diag := err.Error() + "\n" + out
	if strings.Contains(diag, hostSentinel) {
		return "", ErrHostNotInstalled
	}
	return "", fmt.Errorf("%w: %v", ErrBackingStore, err)
}

// psQuote single-quotes a string for PowerShell, doubling embedded
// single quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
