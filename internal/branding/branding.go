// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	DocsBaseURL string `yaml:"docs_base_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "addin",
			DisplayName: "Add-in Sideloader",
			Description: "Register, list, and remove Office add-in manifests for local development",
			HomeDir:     ".addin-cli",
			EnvPrefix:   "ADDIN",
			GoModule:    "github.com/addin-tools/addin",
			DocsBaseURL: "https://learn.microsoft.com/office/dev/add-ins",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "addin").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".addin-cli").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ADDIN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DocsBaseURL returns the base URL for sideloading documentation links.
func DocsBaseURL() string { load(); return defaults.DocsBaseURL }

// EnvVar returns a fully qualified env var name, e.g.,
// EnvVar("SIDELOAD_DIR") → "ADDIN_SIDELOAD_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
