// Package app wires application dependencies for the CLI.
//
// Config is loaded from a YAML file under the laydeck home directory, then
// overridden by LAYDECK_* environment variables and finally by command-line
// flags. NewWire builds the logger, stores, path resolver, layout service
// and report writer from it; App bundles the result for commands to use.
package app
