package profiles

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/addin-tools/addin/internal/branding"
	"go.yaml.in/yaml/v3"
)

//go:embed profiles.yaml
var rawProfiles []byte

// Application names a supported Office application (e.g., "excel").
type Application string

// Kind is the descriptor type discriminator from an add-in manifest.
type Kind string

// Supported manifest kinds. KindMail is recognized only so the parser
// can reject it with a specific message.
const (
	KindTaskPane Kind = "TaskPaneApp"
	KindContent  Kind = "ContentApp"
	KindMail     Kind = "MailApp"
)

// Combination describes how one (application, kind) pair is generated:
// the bundled template document and the archive part carrying the
// placeholder tokens.
type Combination struct {
	Template string `yaml:"template"`
	Part     string `yaml:"part"`
}

// Profile is the static sideloading configuration for one application.
type Profile struct {
	DisplayName  string               `yaml:"display_name"`
	Sideloadable bool                 `yaml:"sideloadable"`
	Container    string               `yaml:"container"`
	DocsPath     string               `yaml:"docs_path"`
	Kinds        map[Kind]Combination `yaml:"kinds"`
}

type table struct {
	Applications map[Application]Profile `yaml:"applications"`
}

var (
	once   sync.Once
	loaded table
)

func load() {
	once.Do(func() {
		if err := yaml.Unmarshal(rawProfiles, &loaded); err != nil {
			// The table is embedded at build time; a parse failure is a
			// packaging bug, not a runtime condition.
			panic(fmt.Sprintf("profiles: embedded profiles.yaml is invalid: %v", err))
		}
	})
}

// Lookup returns the profile for an application name (case-insensitive).
func Lookup(name string) (Application, Profile, error) {
	load()
	app := Application(strings.ToLower(strings.TrimSpace(name)))
	p, ok := loaded.Applications[app]
	if !ok {
		return "", Profile{}, fmt.Errorf("unknown application %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return app, p, nil
}

// Names returns all known application names, sorted.
func Names() []string {
	load()
	names := make([]string, 0, len(loaded.Applications))
	for app := range loaded.Applications {
		names = append(names, string(app))
	}
	sort.Strings(names)
	return names
}

// Sideloadable returns the applications that support automatic
// sideloading, sorted by name.
func Sideloadable() []Application {
	load()
	var apps []Application
	for app, p := range loaded.Applications {
		if p.Sideloadable {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i] < apps[j] })
	return apps
}

// ForCombination returns the template configuration for an
// (application, kind) pair, or ok=false when the pair is unsupported.
func ForCombination(app Application, kind Kind) (Combination, bool) {
	load()
	p, ok := loaded.Applications[app]
	if !ok {
		return Combination{}, false
	}
	c, ok := p.Kinds[kind]
	return c, ok
}

// DocsURL returns the documentation link shown when an application
// cannot be sideloaded automatically.
func (p Profile) DocsURL() string {
	return branding.DocsBaseURL() + p.DocsPath
}
