// Package soup implements pair and batch execution of BFF programs over a
// shared soup buffer.
//
// The soup is a host-owned byte buffer logically divided into equal-size
// regions. This package extracts two wrapped regions, concatenates them into
// one private tape, runs the vm engine over it, and serializes the outcome
// into a fixed little-endian binary record. Results are never written back
// into the soup; acceptance policy belongs to the host.
//
// Pair executions are mutually independent: each reads the soup read-only
// and writes only its own combined tape and output record, so a host may
// parallelize across pairs as long as the soup is not mutated concurrently.
package soup
