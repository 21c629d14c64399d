package model

import "fmt"

// DefinitionError reports a structurally invalid definition, such as a
// cascade that can never select anything or a unit with an unusable output
// path. Definition errors are raised at load time, before any evaluation.
type DefinitionError struct {
	Kind   string // "unit", "cascade" or "profile"
	Name   string
	Detail string
}

func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Name, e.Detail)
}

// UnknownFlagError reports a guard that referenced a configuration flag the
// active profile does not define. Lookups are strict: a missing flag is an
// error, never an implicit false.
type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown configuration flag %q", e.Flag)
}

// GuardTypeError reports a guard expression that produced a value other than
// a boolean. Guards must be strictly boolean; truthiness coercion from other
// types is not performed.
type GuardTypeError struct {
	Type string // friendly name of the offending type
}

func (e *GuardTypeError) Error() string {
	return fmt.Sprintf("guard must produce a boolean, got %s", e.Type)
}
