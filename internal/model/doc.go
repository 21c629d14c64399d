// Package model defines the format-agnostic representation of conditional
// source definitions: render units, cascades of guarded branches, and the
// build profiles they are evaluated against.
//
// The model is the contract between the definition loader and the rest of
// the pipeline. Loaders for a concrete definition syntax translate their
// parse results into this package's types; everything downstream (the
// registry, the selector, the renderer) depends only on this package and
// never on a parser.
package model
