package cli

import (
	"fmt"

	"github.com/addin-tools/addin/internal/profiles"
	"github.com/addin-tools/addin/internal/store"
	"github.com/spf13/cobra"
)

var (
	removeApplication  string
	removeManifestPath string
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a registered manifest",
	Long: `Remove a manifest from the sideloading registration store. Without
--application, every application's registrations are scanned.`,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeApplication, "application", "", "Limit to one application (excel, word, powerpoint)")
	removeCmd.Flags().StringVar(&removeManifestPath, "manifest_path", "", "Path of the manifest to remove")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	var app profiles.Application
	if removeApplication != "" {
		a, _, err := profiles.Lookup(removeApplication)
		if err != nil {
			return err
		}
		app = a
	}

	manifestPath := removeManifestPath
	if manifestPath == "" {
		var err error
		if manifestPath, err = promptFor(cmd, "Manifest path", ""); err != nil {
			return err
		}
	}
	if manifestPath == "" {
		return store.ErrMissingArgument
	}

	if err := store.New().Remove(app, manifestPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", manifestPath)
	return nil
}
