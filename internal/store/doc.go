// Package store records which add-in manifests are registered for
// sideloading. Registrations live in a platform-selected backing store:
// a registry key tree on Windows, a directory of hard-linked manifest
// files everywhere else. Both strategies expose the same Add/List/Remove
// surface and are selected once at startup.
package store
