package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/addin-tools/addin/internal/store"
)

const validManifest = `<?xml version="1.0" encoding="UTF-8"?>
<OfficeApp xmlns="http://schemas.microsoft.com/office/appforoffice/1.1"
           xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
           xsi:type="TaskPaneApp">
  <Id>3AC6F6E0-9E0F-4B4B-9B3A-000000000001</Id>
  <Version>1.2.3.4</Version>
  <ProviderName>Contoso</ProviderName>
  <DisplayName DefaultValue="Contoso Task Pane"/>
</OfficeApp>
`

// runCLI executes the root command in-process with fresh flag state.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// Package-level flag vars persist between Execute calls; tests reset
// them so one case cannot leak arguments into the next.
func resetFlags() {
	sideloadApplication, sideloadManifestPath, sideloadNoOpen = "", "", false
	removeApplication, removeManifestPath = "", ""
	validateManifestPath = ""
	newName, newApplication, newKind, newOutput = "", "", "taskpane", ""
	listApplication, listJSON = "", false
}

func writeValidManifest(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "manifest.xml")
	if err := os.WriteFile(p, []byte(validManifest), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSideloadListRemove_RoundTrip(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	t.Chdir(t.TempDir())
	manifestPath := writeValidManifest(t)

	out, err := runCLI(t, "", "sideload",
		"--application", "excel",
		"--manifest_path", manifestPath,
		"--no-open")
	if err != nil {
		t.Fatalf("sideload error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Registered") || !strings.Contains(out, "Generated") {
		t.Errorf("sideload output missing registration or generation notice:\n%s", out)
	}
	if _, err := os.Stat("BookWithTaskPane.xlsx"); err != nil {
		t.Errorf("generated document not in working directory: %v", err)
	}

	out, err = runCLI(t, "", "list", "--json")
	if err != nil {
		t.Fatalf("list error: %v\n%s", err, out)
	}
	var rows []listEntry
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("list --json output not JSON: %v\n%s", err, out)
	}
	if len(rows) != 1 {
		t.Fatalf("list returned %d rows, want 1: %v", len(rows), rows)
	}
	if rows[0].Application != "excel" || rows[0].ID != "3AC6F6E0-9E0F-4B4B-9B3A-000000000001" {
		t.Errorf("unexpected row: %+v", rows[0])
	}

	out, err = runCLI(t, "", "remove", "--manifest_path", manifestPath)
	if err != nil {
		t.Fatalf("remove error: %v\n%s", err, out)
	}

	out, err = runCLI(t, "", "list")
	if err != nil {
		t.Fatalf("list after remove error: %v", err)
	}
	if !strings.Contains(out, "No manifests registered.") {
		t.Errorf("list after remove should be empty:\n%s", out)
	}

	// A second store-wide remove of the same path has nothing to match.
	_, err = runCLI(t, "", "remove", "--manifest_path", manifestPath)
	if !errors.Is(err, store.ErrNothingRemoved) {
		t.Fatalf("second remove = %v, want ErrNothingRemoved", err)
	}
}

func TestSideload_SecondGenerationGetsSuffix(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	t.Chdir(t.TempDir())
	manifestPath := writeValidManifest(t)

	for i := 0; i < 2; i++ {
		if out, err := runCLI(t, "", "sideload",
			"--application", "excel",
			"--manifest_path", manifestPath,
			"--no-open"); err != nil {
			t.Fatalf("sideload #%d error: %v\n%s", i+1, err, out)
		}
	}

	if _, err := os.Stat("BookWithTaskPane.xlsx"); err != nil {
		t.Errorf("first generation missing: %v", err)
	}
	if _, err := os.Stat("BookWithTaskPane0.xlsx"); err != nil {
		t.Errorf("second generation should get a numeric suffix: %v", err)
	}
}

func TestSideload_DocumentedOnlyApplication(t *testing.T) {
	out, err := runCLI(t, "", "sideload",
		"--application", "outlook",
		"--manifest_path", "ignored.xml")
	if err != nil {
		t.Fatalf("sideload for outlook should not fail: %v", err)
	}
	if !strings.Contains(out, "does not support automatic sideloading") ||
		!strings.Contains(out, "https://") {
		t.Errorf("expected docs pointer for outlook:\n%s", out)
	}
}

func TestRemove_PromptEmptyPath(t *testing.T) {
	_, err := runCLI(t, "\n", "remove")
	if !errors.Is(err, store.ErrMissingArgument) {
		t.Fatalf("remove without a path = %v, want ErrMissingArgument", err)
	}
}

func TestValidate_ManifestAndAdvisory(t *testing.T) {
	manifestPath := writeValidManifest(t)

	out, err := runCLI(t, "", "validate", "--manifest_path", manifestPath)
	if err != nil {
		t.Fatalf("validate error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "TaskPaneApp") || !strings.Contains(out, "1.2.3.4") {
		t.Errorf("validate output missing descriptor fields:\n%s", out)
	}
	if strings.Contains(out, "warning:") {
		t.Errorf("four-part version should not draw an advisory:\n%s", out)
	}
}

func TestNew_ScaffoldsProject(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "", "new", "--name", "my-addin", "--application", "excel")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	for _, f := range []string{"manifest.xml", "addin.yaml", "taskpane.html", "README.md"} {
		if _, err := os.Stat(filepath.Join("my-addin", f)); err != nil {
			t.Errorf("scaffold missing %s: %v", f, err)
		}
	}
}

func TestVersionAdvisory(t *testing.T) {
	tests := []struct {
		version string
		warn    bool
	}{
		{"1.0.0.0", false},
		{"1.2.3.4", false},
		{"1.2.3", true},
		{"not.a.version", true},
	}
	for _, tt := range tests {
		if got := versionAdvisory(tt.version); (got != "") != tt.warn {
			t.Errorf("versionAdvisory(%q) = %q, want warn=%v", tt.version, got, tt.warn)
		}
	}
}
