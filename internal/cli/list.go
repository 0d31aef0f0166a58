package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/addin-tools/addin/internal/manifest"
	"github.com/addin-tools/addin/internal/profiles"
	"github.com/addin-tools/addin/internal/store"
	"github.com/spf13/cobra"
)

var (
	listApplication string
	listJSON        bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered manifests",
	Long:  `List every manifest registered for sideloading, across all applications by default.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listApplication, "application", "", "Limit to one application (excel, word, powerpoint)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one registration for display.
type listEntry struct {
	Application string `json:"application"`
	ID          string `json:"id"`
	Path        string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	var app profiles.Application
	if listApplication != "" {
		a, _, err := profiles.Lookup(listApplication)
		if err != nil {
			return err
		}
		app = a
	}

	entries, err := store.New().List(app)
	if err != nil {
		return fmt.Errorf("listing registrations: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No manifests registered.")
		return nil
	}

	rows := make([]listEntry, 0, len(entries))
	for _, e := range entries {
		row := listEntry{Application: string(e.App), ID: "unknown", Path: e.Path}
		if row.Application == "" {
			row.Application = "all"
		}
		// Best effort: a registered file may no longer parse.
		if d, err := manifest.Parse(e.Path); err == nil {
			row.ID = d.ID
		}
		rows = append(rows, row)
	}

	if listJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLICATION\tID\tPATH")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Application, r.ID, r.Path)
	}
	return w.Flush()
}
