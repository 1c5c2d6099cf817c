package server

import "errors"

// errNoServersAreCreated means the handlers carry no transport that could
// be served.
var errNoServersAreCreated = errors.New("no servers are created: http handler or address is missing")
