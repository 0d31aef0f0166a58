package manifest

import "errors"

// Sentinel errors returned by Parse. Callers match with errors.Is; the
// wrapped message carries the file-specific detail.
var (
	// ErrNotFound reports that the manifest path does not resolve to a file.
	ErrNotFound = errors.New("manifest file not found")

	// ErrRead reports that the manifest file exists but could not be read.
	ErrRead = errors.New("manifest file could not be read")

	// ErrMalformedXML reports that the manifest is not well-formed XML.
	ErrMalformedXML = errors.New("manifest is not well-formed XML")

	// ErrSchema reports that required structure is absent from the manifest.
	ErrSchema = errors.New("manifest is missing required structure")

	// ErrInvalidID reports that the Id element is not a GUID.
	ErrInvalidID = errors.New("manifest Id is not a valid GUID")

	// ErrUnsupportedApplication reports a MailApp manifest. Outlook
	// add-ins are installed through Outlook itself, not this tool.
	ErrUnsupportedApplication = errors.New("mail add-ins for Outlook are not supported by this tool")

	// ErrUnsupportedKind reports a type discriminator that is neither
	// TaskPaneApp nor ContentApp.
	ErrUnsupportedKind = errors.New("unsupported add-in kind")
)
