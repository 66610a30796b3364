// Package application wires configuration, platform detection and the
// properties loader together, keeping the main package focused on CLI parsing.
package application
