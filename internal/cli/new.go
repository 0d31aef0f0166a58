package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/addin-tools/addin/internal/manifest"
	"github.com/addin-tools/addin/internal/profiles"
	"github.com/addin-tools/addin/internal/project"
	"github.com/spf13/cobra"
)

var (
	newName        string
	newApplication string
	newKind        string
	newOutput      string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new add-in project",
	Long: `Create a new add-in project directory containing a manifest with a fresh
GUID, a starter task pane page, and an addin.yaml project descriptor.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "Project name")
	newCmd.Flags().StringVar(&newApplication, "application", "", "Target application (excel, word, powerpoint)")
	newCmd.Flags().StringVar(&newKind, "kind", "taskpane", "Add-in kind (taskpane or content)")
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Output directory (defaults to ./<name>)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := newName
	if name == "" {
		var err error
		if name, err = promptFor(cmd, "Project name", ""); err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("a project name is required")
	}

	appName := newApplication
	if appName == "" {
		var err error
		if appName, err = promptFor(cmd, "Application", "excel"); err != nil {
			return err
		}
	}
	app, _, err := resolveApplication(appName)
	if err != nil {
		return err
	}

	var kind profiles.Kind
	switch strings.ToLower(newKind) {
	case "taskpane":
		kind = profiles.KindTaskPane
	case "content":
		kind = profiles.KindContent
	default:
		return fmt.Errorf("unknown kind %q (want taskpane or content)", newKind)
	}
	if _, ok := profiles.ForCombination(app, kind); !ok {
		return fmt.Errorf("%s does not support %s add-ins", app, kind)
	}

	data, err := project.NewScaffoldData(name, app, kind)
	if err != nil {
		return err
	}

	outputDir := newOutput
	if outputDir == "" {
		outputDir = name
	}

	result, err := project.Scaffold(data, outputDir)
	if err != nil {
		return err
	}

	// The scaffolded manifest must pass the same checks sideloading
	// applies, or the generated project is broken out of the box.
	if _, err := manifest.Parse(filepath.Join(outputDir, "manifest.xml")); err != nil {
		return fmt.Errorf("scaffolded manifest failed validation: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s:\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	fmt.Fprintf(out, "\nNext: addin sideload --application %s --manifest_path %s\n",
		app, filepath.Join(outputDir, "manifest.xml"))
	return nil
}
