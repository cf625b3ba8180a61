// Package engine wires configuration to a working imitator: it loads the
// YAML config and transcript files, validates them, and builds the
// configured provider adapter through an extensible factory registry.
package engine
