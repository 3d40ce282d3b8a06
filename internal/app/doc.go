// Package app wires configuration, measurement, console output, exports and
// the plot viewer into the sumbench command.
//
// [Execute] is the entry point used by cmd/sumbench: it builds the cobra
// command tree, runs it and maps any error to a process exit code with
// apperrors.HandleError.
package app
