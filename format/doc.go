// Package format holds the primitive value checks used inside marketplace
// records: Ethereum addresses (with mixed-case checksum), bytes32 hex
// literals, semantic versions and ISO-8601 dates.
//
// Every check is a plain predicate over a string and is safe for concurrent
// use.
package format
