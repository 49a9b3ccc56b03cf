// Package cli defines the Cobra command tree for the junoup CLI. The root
// command runs the version check itself; each other file in this package
// registers one subcommand (version, config) with the root command. Command
// implementations delegate to internal packages for business logic and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
