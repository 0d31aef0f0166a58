// Package generator produces ready-to-open Office documents seeded with
// a sideloaded add-in's id and version. Each (application, kind) pair
// maps to a bundled ZIP template whose web-extension part carries
// placeholder tokens; generation is a textual find-and-replace over
// that one part, never a structural XML edit, so output stays
// byte-compatible with documents produced by earlier tooling.
package generator
