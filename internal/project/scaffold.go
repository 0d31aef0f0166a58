package project

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/addin-tools/addin/internal/profiles"
	"github.com/google/uuid"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// hostNames maps an application to the Host element name its manifests
// declare.
var hostNames = map[profiles.Application]string{
	"excel":      "Workbook",
	"word":       "Document",
	"powerpoint": "Presentation",
}

const defaultDevPort = 3000

// ScaffoldData holds the variables available to scaffold templates.
type ScaffoldData struct {
	Name        string               // project and display name
	Application profiles.Application // target application
	Kind        profiles.Kind        // TaskPaneApp or ContentApp
	ID          string               // freshly minted GUID
	Version     string               // initial manifest version
	Provider    string
	Description string
	Host        string // manifest Host element name
	Port        int    // dev server port
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData mints a ScaffoldData with a fresh GUID and derived
// defaults for the given name, application, and kind.
func NewScaffoldData(name string, app profiles.Application, kind profiles.Kind) (*ScaffoldData, error) {
	host, ok := hostNames[app]
	if !ok {
		return nil, fmt.Errorf("application %q cannot host a scaffolded add-in", app)
	}
	return &ScaffoldData{
		Name:        name,
		Application: app,
		Kind:        kind,
		ID:          uuid.NewString(),
		Version:     "1.0.0.0",
		Provider:    name,
		Description: fmt.Sprintf("%s add-in for %s", name, host),
		Host:        host,
		Port:        defaultDevPort,
	}, nil
}

// Scaffold renders every embedded template into outputDir, which must
// be empty or absent. The generated addin.yaml is validated against
// the descriptor schema; violations come back as warnings rather than
// failing the scaffold.
func Scaffold(data *ScaffoldData, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	entries, err := fs.ReadDir(scaffoldFS, "scaffolds")
	if err != nil {
		return nil, fmt.Errorf("reading embedded scaffolds: %w", err)
	}

	result := &Result{OutputDir: outputDir}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		tmplBytes, err := fs.ReadFile(scaffoldFS, "scaffolds/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	// Self-check the generated descriptor.
	descriptorPath := filepath.Join(outputDir, DescriptorFile)
	if _, err := os.Stat(descriptorPath); err == nil {
		valResult, valErr := ValidateFile(descriptorPath)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not validate %s: %v", DescriptorFile, valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}
