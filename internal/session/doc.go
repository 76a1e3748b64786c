// Package session holds the client's single source of truth for who is
// signed in, and the route guard computed from it.
//
// [Store] keeps the session token and profile in memory and mirrors the token
// into a durable slot so it survives restarts. All writes go through one
// mutex; every change is published to subscribers. [Guard] maps the session
// status to what a protected view should do.
package session
