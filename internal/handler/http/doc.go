// Package http implements the REST API of the store.
//
// It wires routes, request handlers and middleware. Tracing, access
// logging, CORS, compression and bearer authentication are handled here
// before requests reach the service layer. Every error leaves the package
// as a JSON body of the form {"error": "..."}.
package http
