// Package types defines the core data types shared across the hestia
// retrieval pipeline.
//
// This package contains the fundamental types used throughout hestia:
//   - RetrievalResult: A scored advice passage with its expanded neighborhood
//   - Post: A community post submitted for an automatic reply
//   - Message/Response: The chat interchange types used by the nlp package
//
// # Lifecycle
//
// RetrievalResult values are transient. They are produced per query by the
// search package, consumed by the format and synthesis packages, and never
// persisted back to the graph store.
package types
