// Command directory runs a minimal in-memory device-key directory server
// for local development and testing. It keeps public keys only; entries are
// upserted per (user, device) and never deleted.
package main
