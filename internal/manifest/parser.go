package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/addin-tools/addin/internal/profiles"
	"github.com/antchfx/xmlquery"
	"github.com/google/uuid"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Parse reads and validates an add-in manifest file. Validation is
// ordered so that a document with several defects always reports the
// earliest one: well-formed XML, OfficeApp root, xsi:type attribute,
// Id element, Version element, GUID shape, and finally kind support.
func Parse(path string) (*Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedXML, path, err)
	}

	// A document that parsed but carries no element at all (e.g., bare
	// text) never had an XML root to begin with.
	root := firstElement(doc)
	if root == nil {
		return nil, fmt.Errorf("%w: %s has no root element", ErrMalformedXML, path)
	}

	officeApp := root
	if localName(root) != "OfficeApp" {
		officeApp = findElement(root, "OfficeApp")
	}
	if officeApp == nil {
		return nil, fmt.Errorf("%w: %s has no OfficeApp element", ErrSchema, path)
	}

	typeAttr, ok := xsiType(officeApp)
	if !ok {
		return nil, fmt.Errorf("%w: OfficeApp in %s has no xsi:type attribute", ErrSchema, path)
	}

	idNode := findElement(officeApp, "Id")
	if idNode == nil {
		return nil, fmt.Errorf("%w: OfficeApp in %s has no Id element", ErrSchema, path)
	}
	id := strings.TrimSpace(idNode.InnerText())

	versionNode := findElement(officeApp, "Version")
	if versionNode == nil {
		return nil, fmt.Errorf("%w: OfficeApp in %s has no Version element", ErrSchema, path)
	}
	version := strings.TrimSpace(versionNode.InnerText())

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	kind := profiles.Kind(strings.TrimSpace(typeAttr))
	switch kind {
	case profiles.KindMail:
		return nil, fmt.Errorf("%w (manifest %s declares xsi:type=%q)", ErrUnsupportedApplication, path, typeAttr)
	case profiles.KindTaskPane, profiles.KindContent:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, typeAttr)
	}

	d := &Descriptor{
		Kind:    kind,
		ID:      id,
		Version: version,
	}

	// Optional display fields, for list/validate output only.
	if n := findElement(officeApp, "ProviderName"); n != nil {
		d.Provider = strings.TrimSpace(n.InnerText())
	}
	if n := findElement(officeApp, "DisplayName"); n != nil {
		if v := attrByLocal(n, "DefaultValue"); v != "" {
			d.DisplayName = v
		} else {
			d.DisplayName = strings.TrimSpace(n.InnerText())
		}
	}

	return d, nil
}

// firstElement returns the first element child of a node, skipping the
// XML declaration, comments, and whitespace.
func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// findElement returns the first direct child element with the given
// local name, ignoring namespace prefixes. Manifests use a default
// namespace, so matching on local names keeps the parser tolerant of
// prefixed and unprefixed documents alike.
func findElement(n *xmlquery.Node, local string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && localName(c) == local {
			return c
		}
	}
	return nil
}

func localName(n *xmlquery.Node) string {
	if i := strings.IndexByte(n.Data, ':'); i >= 0 {
		return n.Data[i+1:]
	}
	return n.Data
}

// xsiType returns the value of the xsi:type attribute on a node.
func xsiType(n *xmlquery.Node) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local != "type" {
			continue
		}
		if a.NamespaceURI == xsiNamespace || a.Name.Space == "xsi" || a.Name.Space == xsiNamespace {
			return a.Value, true
		}
	}
	return "", false
}

func attrByLocal(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
