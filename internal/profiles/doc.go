// Package profiles holds the static per-application sideloading table:
// which Office applications can be sideloaded automatically, which
// manifest kinds each supports, and the template document used for
// each combination. The table is embedded reference data, not state.
package profiles
