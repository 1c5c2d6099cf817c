package server

// Server defines the lifecycle of the process managed by this package.
//
// RunServer blocks until a stop signal arrives and everything was shut
// down.
type Server interface {
	RunServer()

	// Shutdown gracefully stops the HTTP server.
	Shutdown()
}
