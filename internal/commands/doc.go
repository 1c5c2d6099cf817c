// Package commands implements the cryptctl command tree.
//
// Remote commands (status, pool, rotate, config, version) talk to a running
// server through [adapter.AdminClient]. Local commands (token, nonce,
// secret) only need the CLI configuration.
package commands
