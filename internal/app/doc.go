// Package app wires stores, services, and clients into a runnable
// dependency graph and loads runtime configuration.
package app
