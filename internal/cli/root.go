package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/addin-tools/addin/internal/branding"
	"github.com/addin-tools/addin/internal/config"
	"github.com/addin-tools/addin/internal/generator"
	"github.com/addin-tools/addin/internal/logger"
	"github.com/addin-tools/addin/internal/manifest"
	"github.com/addin-tools/addin/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` registers Office add-in manifests for local sideloading,
lists and removes existing registrations, validates manifests against the
publishing rules, and scaffolds new add-in projects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Set(verbose)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
// Failures are rendered here, once: the full message goes to the user
// on stderr, while the diagnostic log records only the generic error
// category so no manifest paths leak into it.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if config.TelemetryEnabled() {
			log.Debug().Str("category", errorCategory(err)).Msg("command failed")
		}
	}
	return err
}

// errorCategory maps an error chain to its stable, path-free name.
func errorCategory(err error) string {
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		return "manifest-not-found"
	case errors.Is(err, manifest.ErrRead):
		return "manifest-read"
	case errors.Is(err, manifest.ErrMalformedXML):
		return "manifest-malformed-xml"
	case errors.Is(err, manifest.ErrSchema):
		return "manifest-schema"
	case errors.Is(err, manifest.ErrInvalidID):
		return "manifest-invalid-id"
	case errors.Is(err, manifest.ErrUnsupportedApplication):
		return "manifest-unsupported-application"
	case errors.Is(err, manifest.ErrUnsupportedKind):
		return "manifest-unsupported-kind"
	case errors.Is(err, store.ErrConflict):
		return "store-conflict"
	case errors.Is(err, store.ErrNothingRemoved):
		return "store-nothing-removed"
	case errors.Is(err, store.ErrHostNotInstalled):
		return "store-host-not-installed"
	case errors.Is(err, store.ErrMissingArgument):
		return "store-missing-argument"
	case errors.Is(err, store.ErrBackingStore):
		return "store-backing-store"
	case errors.Is(err, generator.ErrUnsupportedCombination):
		return "generator-unsupported-combination"
	case errors.Is(err, generator.ErrTemplatePartMissing):
		return "generator-template-part-missing"
	default:
		return "other"
	}
}
