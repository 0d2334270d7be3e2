// Package commands defines the laydeck CLI and wires dependencies for subcommands.
//
// Commands
//
//   - parse          Extract labware from deck layouts and write reports
//   - watch          Process layouts as they appear in a directory
//   - init           Write the default configuration file
//   - fingerprint    Print the content digest of deck layouts
//
// # Implementation
//
// The root command loads the configuration (file, then environment, then
// flags) and builds the dependency graph (stores, path resolver, layout
// service, report writer) before any subcommand runs.
package commands
