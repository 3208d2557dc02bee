// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (defaults, optional YAML file, PRIMECOUNT_*
// environment), builds the logrus logger, and constructs the concrete
// source, engine, services, stores and relay client, exposing them via the
// Wire struct for commands to use.
package app
