// Package device provides the stable identifier of the current installation.
package device
