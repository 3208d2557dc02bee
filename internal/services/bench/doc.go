// Package bench runs the sequential and parallel prime counts over one input
// and compares them.
//
// Stages run in a fixed order: load input, sequential count, parallel count.
// An Observer is told about each stage as soon as it completes, so callers can
// print progressively; a failure in a later stage does not undo what the
// observer already received.
package bench
