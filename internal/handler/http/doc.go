// Package http implements the HTTP transport layer of the augment server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, response compression, and request
// deadlines are handled in this package before requests are delegated to the
// service layer.
package http
