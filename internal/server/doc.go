// Package server wires and runs the augmenter's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured request timeout.
package server
