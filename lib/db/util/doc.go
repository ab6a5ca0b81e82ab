// Package util provides utility components for
// database engines that satisfy the db.OrderedKVDB interface.
//
// The package contains:
//   - functions: Seeded hash functions and other utility functions
//   - mapheap: A priority queue implementation for garbage collection that also supports key-based access
//   - statistics: Size histograms and distribution statistics for engine introspection
//
// This package is particularly useful for:
//   - Engine developers implementing the OrderedKVDB interface
//   - Implementation of garbage collection or other priority queue systems
package util
