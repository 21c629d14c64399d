// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. Flag
// defaults are seeded from the environment, and the parsed result is
// translated into the application's internal configuration.
package cli
