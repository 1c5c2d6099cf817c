// Package http implements the admin REST API of go-crypt-keeper.
//
// It exposes the encryption status and rotation endpoints used by operators
// and the protected config endpoints used by applications. Authentication,
// request tracing, access logging and response compression are handled
// here before requests reach the service layer.
package http
