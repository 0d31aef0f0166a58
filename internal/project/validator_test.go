package project

import (
	"os"
	"strings"
	"testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestValidate_Valid(t *testing.T) {
	data := []byte(`name: my-addin
application: excel
kind: TaskPaneApp
manifest: manifest.xml
dev_server:
  port: 3000
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("descriptor should be valid, issues: %v", result.Issues)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		path string
	}{
		{
			name: "unknown application",
			yaml: "name: x\napplication: access\nmanifest: manifest.xml\n",
			path: "/application",
		},
		{
			name: "missing manifest",
			yaml: "name: x\napplication: excel\n",
			path: "",
		},
		{
			name: "port out of range",
			yaml: "name: x\napplication: excel\nmanifest: m.xml\ndev_server:\n  port: 99999\n",
			path: "/dev_server/port",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("descriptor should be invalid")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q, got %v", tt.path, result.Issues)
			}
		})
	}
}

func TestValidate_NotYAML(t *testing.T) {
	if _, err := Validate([]byte("\tnot: [valid")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/addin.yaml"
	if err := writeFile(path, "name: my-addin\napplication: word\nmanifest: manifest.xml\n"); err != nil {
		t.Fatal(err)
	}
	d, err := LoadDescriptor(path)
	if err != nil {
		t.Fatalf("LoadDescriptor error: %v", err)
	}
	if d.Name != "my-addin" || d.Application != "word" || d.Manifest != "manifest.xml" {
		t.Errorf("unexpected descriptor: %+v", d)
	}
}

func TestLoadDescriptor_Missing(t *testing.T) {
	if _, err := LoadDescriptor(t.TempDir() + "/nope.yaml"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := LoadDescriptor(""); err == nil || !strings.Contains(err.Error(), "reading descriptor") {
		t.Fatal("expected reading error")
	}
}
