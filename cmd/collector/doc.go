// Package main runs the in-memory HTTP collector that primecount publishes
// runs to with --publish.
//
// HTTP API
//
//	POST /runs
//	    Store one Comparison (JSON body). Answers 202 Accepted.
//
//	GET /runs
//	    Return every stored Comparison as a JSON array, oldest first.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - A logrus access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :8090.
package main
