// Package commands implements the multibox CLI surface: identity creation,
// device listing, and envelope encryption/decryption against a directory
// server.
package commands
