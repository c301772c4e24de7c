// Package app wires a validated Config into a logger and an export run,
// independent of the command-line entrypoint that produced the Config.
package app
