// Package config loads, merges and validates the configuration of the
// recipe book client and the stand-in catalog server.
//
// Sources are read in this order and, field by field, the first one that sets
// a value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetClientConfig] returns the client view and [GetServerConfig] the
// stand-in server view.
package config
