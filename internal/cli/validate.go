package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/addin-tools/addin/internal/manifest"
	"github.com/addin-tools/addin/internal/project"
	"github.com/addin-tools/addin/internal/store"
	"github.com/spf13/cobra"
)

var validateManifestPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a manifest or project descriptor",
	Long: `Check an add-in manifest against the rules enforced before sideloading
and print what was found. Given an addin.yaml project descriptor instead,
validate it against the descriptor schema.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateManifestPath, "manifest_path", "", "Path to the manifest XML or addin.yaml")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := validateManifestPath
	if path == "" {
		var err error
		if path, err = promptFor(cmd, "Manifest path", ""); err != nil {
			return err
		}
	}
	if path == "" {
		return store.ErrMissingArgument
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return validateDescriptor(cmd, path)
	}

	d, err := manifest.Parse(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s is a valid %s manifest.\n", path, d.Kind)
	fmt.Fprintf(out, "  Id:      %s\n", d.ID)
	fmt.Fprintf(out, "  Version: %s\n", d.Version)
	if d.DisplayName != "" {
		fmt.Fprintf(out, "  Name:    %s\n", d.DisplayName)
	}
	if d.Provider != "" {
		fmt.Fprintf(out, "  Provider: %s\n", d.Provider)
	}
	if advice := versionAdvisory(d.Version); advice != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", advice)
	}
	return nil
}

func validateDescriptor(cmd *cobra.Command, path string) error {
	result, err := project.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid project descriptor.\n", path)
		return nil
	}
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "(root)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", loc, issue.Message)
	}
	return fmt.Errorf("%s has %d schema violation(s)", path, len(result.Issues))
}

// versionAdvisory flags versions the Office store will reject. Office
// expects a four-part numeric version; plain semver is close enough to
// deserve a pointed hint rather than a failure.
func versionAdvisory(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) == 4 {
		numeric := true
		for _, p := range parts {
			if _, err := strconv.Atoi(p); err != nil {
				numeric = false
				break
			}
		}
		if numeric {
			return ""
		}
	}
	if v, err := semver.NewVersion(version); err == nil {
		return fmt.Sprintf("version %q is three-part semver; Office expects four parts, e.g. %d.%d.%d.0",
			version, v.Major(), v.Minor(), v.Patch())
	}
	return fmt.Sprintf("version %q is not a dotted numeric version; Office expects e.g. 1.0.0.0", version)
}
