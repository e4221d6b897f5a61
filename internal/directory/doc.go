// Package directory implements the HTTP client for the remote device-key
// directory. The directory maps (user, device) to that device's current
// public key; this client only ever writes the local device's own entry.
package directory
