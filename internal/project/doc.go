// Package project scaffolds new add-in projects from embedded templates
// and validates the addin.yaml project descriptor each scaffold carries.
// It powers the "addin new" command.
package project
