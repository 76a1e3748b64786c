// Package http implements the REST surface of the stand-in catalog server.
// It mirrors the public demo catalog: JSON bodies, {"message": "..."} error
// payloads, bearer tokens on /auth/me and on recipe writes. Tracing, request
// logging, compression and panic recovery are handled here before requests
// reach the service layer.
package http
