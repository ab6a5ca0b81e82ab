// Package testing provides standardised tests and benchmarks for
// database engines that satisfy the db.OrderedKVDB interface.
//
// The package contains:
//   - testing: A comprehensive test suite for validating conformance to the OrderedKVDB interface contract
//   - benchmark: Performance tests for measuring throughput of common engine operations
//
// This package is particularly useful for:
//   - Applications that need to select the most appropriate engine implementation
//     based on performance characteristics
//   - Engine developers implementing the OrderedKVDB interface
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() db.OrderedKVDB {
//		return NewMyDatabase()
//	}
//
//	// Running the standard test suite
//	dbtesting.RunOrderedKVDBTests(t, "MyDatabase", factory)
//
//	// Running performance benchmarks
//	dbtesting.RunOrderedKVDBBenchmarks(b, "MyDatabase", factory)
package testing
