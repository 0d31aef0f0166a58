// Package manifest parses Office add-in XML descriptors into a typed
// Descriptor (kind, id, version) and validates them against the
// publishing rules enforced before sideloading.
package manifest
