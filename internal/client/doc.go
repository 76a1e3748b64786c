// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI for the lifetime of the process, stops it on
// SIGINT, SIGTERM or SIGQUIT and releases the local session storage on exit.
package client
