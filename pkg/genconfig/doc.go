// Package genconfig models the configuration documents produced by the
// enumeration engine: a mapping from entity name to resolved option values,
// plus the canonical fingerprinting used to suppress structurally identical
// documents after generation.
package genconfig
