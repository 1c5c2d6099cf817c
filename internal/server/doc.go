// Package server runs the admin HTTP API together with the background
// workers and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
