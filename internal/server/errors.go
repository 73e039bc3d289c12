package server

import "errors"

var (
	ErrRouteNotFound      = errors.New("route not found")
	ErrMethodNotSupported = errors.New("method not supported")
	ErrMalformedBody      = errors.New("malformed body")

	errNotObject    = errors.New("body is not a JSON object")
	errTrailingData = errors.New("trailing data after JSON object")
)
