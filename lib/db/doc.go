// Package db provides a standardized interface for ordered-index database
// engines. It defines the OrderedKVDB interface that allows consistent
// interaction with different backends while abstracting implementation details.
//
// The package focuses on:
//   - A unified interface for hash records, counters, score-ordered sets
//     and expiring string keys
//   - Feature discovery through capability flags
//   - Standardized metadata reporting
//
// Key Components:
//
//   - OrderedKVDB Interface: The core interface all engine implementations
//     must satisfy. It groups four key families: hash records (HGetAll, HGet,
//     HSet, HIncrBy), atomic counters (Incr), score-ordered sets (ZAdd,
//     ZScore, ZCard, ZRem, ZRangeDesc) and expiring string keys (SetEx,
//     GetS, Del).
//
//   - Feature Flags: The Feature type defines capability flags that
//     implementations advertise through the SupportsFeature method. This
//     allows clients to discover supported operations at runtime.
//
//   - Implementation Identifiers: The Implementation type provides string
//     constants for the different engine backends (currently "alder").
//
//   - Database Information: The DatabaseInfo structure provides standardized
//     reporting on engine state, including implementation type and
//     implementation-specific metadata.
//
// Note on Ordered Sets:
//   - ZAdd distinguishes a genuine first-time insertion from a score update
//     of an existing member via its boolean return. Callers that maintain
//     cached cardinality counters rely on this to count each member once
//     even under concurrent duplicate insertions.
//   - ZRangeDesc iterates in descending score order with ties broken by
//     member, ascending, so paging over a set is deterministic.
//
// Note on Expiring Keys:
//   - External Consistency: GetS must never return an entry whose ttl has
//     logically elapsed, even if the entry still exists internally pending
//     collection. This separation between logical and physical state allows
//     implementations to use efficient background collection strategies
//     without compromising the consistency guarantees of the interface.
//
// Related Packages:
//
// The engines/alder package (github.com/edicola-dev/edicola/lib/db/engines/alder)
// provides an implementation of the OrderedKVDB interface using a sharded
// in-memory architecture with background garbage collection for expiring keys.
//
// The util package (github.com/edicola-dev/edicola/lib/db/util) provides
// complementary tools for engine implementations:
//   - HashString: Seeded FNV-1a hashing for shard selection
//   - MapHeap: A priority queue keyed by entry name, used by the ttl GC
//
// The testing package (github.com/edicola-dev/edicola/lib/db/testing) provides
// standardized tests for engines that satisfy the db.OrderedKVDB interface.
//   - RunOrderedKVDBTests: Runs a standardized test suite to validate implementations
package db
