// Package report writes benchmark comparisons for people and for machines.
//
// Formats
//
//   - text  The console layout: input header, a single-thread block, a
//     multi-thread block and a warning line when the counts differ. Text
//     is printed stage by stage through Text, which implements
//     bench.Observer.
//   - json  The whole Comparison as indented JSON.
//   - yaml  The whole Comparison as YAML.
package report
