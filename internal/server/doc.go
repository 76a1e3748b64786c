// Package server runs the stand-in catalog's HTTP server, including
// startup, signal handling and graceful shutdown.
package server
