// Package relay moves benchmark runs between primecount and a collector.
//
// HTTP is the client side: PublishRun posts one Comparison and FetchRuns
// lists what the collector holds. Server is the collector itself, keeping
// runs in memory until the process exits.
//
// HTTP API
//
//	POST /runs   store one Comparison (JSON body), answers 202
//	GET  /runs   return all stored Comparisons as a JSON array
//
// Requests accept a context for cancellation and deadlines. Non-2xx statuses
// are returned as errors with the method, full URL and status text.
package relay
