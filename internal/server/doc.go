// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown. Releasing the database is left to the caller once RunServer
// returns.
package server
