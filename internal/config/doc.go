// Package config manages persistent CLI configuration stored in
// ~/.addin-cli/config.yaml, with ADDIN_* environment overrides.
package config
