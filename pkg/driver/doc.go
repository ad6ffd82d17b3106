// Package driver provides access to the graph store holding the parenting
// advice knowledge graph.
//
// The package defines the GraphStore interface consumed by the search
// package and implements it for Neo4j on the official Go driver. All
// statements are parameterized; the driver never splices caller-supplied
// text into a query body.
//
// The driver is a long-lived, process-wide handle. It performs read-only
// work and is safe to share across concurrent requests; all graph mutation
// belongs to the separate construction pipeline.
package driver
