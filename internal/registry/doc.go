// Package registry provides the central index of loaded definitions.
//
// The Registry stores the units and profiles discovered by the loader, keyed
// by name with unit declaration order preserved, and enforces the
// cross-object invariants a single file cannot see: name uniqueness across
// all definition files and output path collisions between units.
//
// During application startup, the registry is populated and then its guards
// are validated against the active profile's vocabulary, so that a flag typo
// fails the run before any output is written.
package registry
