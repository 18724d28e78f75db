package server

import "errors"

// Server is the lifecycle contract of the inbound transport layer.
type Server interface {
	// RunServer blocks serving requests until a stop signal arrives, then
	// shuts down gracefully.
	RunServer()

	// Shutdown stops the transport without waiting for a signal.
	Shutdown()
}

var errNoServersAreCreated = errors.New("no servers are created")
