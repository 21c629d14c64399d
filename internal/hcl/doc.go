// Package hcl provides the concrete HCL implementation of the definition
// loading interface defined in the `model` package. It is responsible for
// file parsing, HCL-to-model translation, and wrapping guard expressions so
// the rest of the pipeline never touches a parser.
package hcl
