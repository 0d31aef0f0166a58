package project

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// DescriptorFile is the well-known project descriptor name.
const DescriptorFile = "addin.yaml"

// Descriptor is the addin.yaml project descriptor written by the
// scaffolder and consumed by the validate command.
type Descriptor struct {
	Name        string     `yaml:"name"`
	Application string     `yaml:"application"`
	Kind        string     `yaml:"kind,omitempty"`
	Manifest    string     `yaml:"manifest"`
	DevServer   *DevServer `yaml:"dev_server,omitempty"`
}

// DevServer holds local development server settings.
type DevServer struct {
	Port int `yaml:"port"`
}

// LoadDescriptor reads and parses an addin.yaml file.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return &d, nil
}
