// Package commands defines the primecount CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - primecount <input-file> [thread-count]
//     Count primes sequentially and in parallel and compare the results
//   - history    List stored runs (local history or a collector)
//   - host       Print the detected processor
//
// # Implementation
//
// The root command loads configuration through viper (flags, YAML file,
// PRIMECOUNT_* environment), builds the logger and the dependency graph
// before any subcommand runs, so handlers share one app.Wire.
package commands
