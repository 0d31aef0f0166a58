package manifest

import "github.com/addin-tools/addin/internal/profiles"

// Descriptor is the parsed result of an add-in manifest file. It is
// constructed fresh per Parse call and never mutated afterwards.
type Descriptor struct {
	// Kind is the xsi:type discriminator, one of TaskPaneApp or ContentApp.
	Kind profiles.Kind

	// ID is the add-in GUID exactly as written in the manifest.
	ID string

	// Version is the dotted version string. Presence is required but the
	// format is not validated here; see the validate command for advisories.
	Version string

	// DisplayName and Provider are extracted best-effort for display
	// purposes. Either may be empty.
	DisplayName string
	Provider    string
}
