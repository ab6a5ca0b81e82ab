// Package alder implements an in-memory ordered-index database with
// concurrent access support. It provides a complete implementation of the
// db.OrderedKVDB interface with a focus on thread safety and predictable
// ordering semantics.
//
// The package focuses on:
//   - Optimized concurrent access through sharding and concurrent maps
//   - Hash records with atomic field updates and integer field increments
//   - Score-ordered sets with deterministic descending iteration
//   - Time-based expiry of string keys with background garbage collection
//
// Key Components:
//
//   - alderImpl: The central database structure implementing db.OrderedKVDB.
//     It manages shards, coordinates garbage collection and provides the
//     public API. The time source is injectable via DBOptions.Clock so that
//     expiry behavior can be tested without waiting on the wall clock.
//
//   - Shard: A partition of the database that manages a subset of the key
//     space. Each shard holds one concurrent map per key family (hashes,
//     counters, ordered sets, strings) plus the expire heap for its string
//     keys. Shards operate independently to minimize contention.
//
//   - ZSet: A score-ordered set combining a member index for O(1) score
//     lookups with a slice kept sorted by (score descending, member
//     ascending). The sorted slice makes range reads a simple copy and the
//     tie-break rule makes paging deterministic.
//
// Internal Mechanisms:
//
//   - Sharding Strategy: Keys are distributed across shards in a two-step
//     process:
//     1. String keys are converted to 64-bit integers using the HashString
//     function with a database-specific seed
//     2. The integer key is right-shifted by 7 bits to use higher-quality
//     bits for distribution
//
//   - Copy-on-write Hash Records: A stored hash record is never mutated in
//     place. HSet and HIncrBy build a fresh merged map inside an atomic
//     Compute and install it, so concurrent readers always observe a
//     consistent snapshot of the record.
//
//   - First-Insert Detection: ZAdd reports whether a member was genuinely
//     inserted for the first time. Callers that maintain cached cardinality
//     counters use this to count each member exactly once even when the same
//     member is inserted concurrently.
//
// Garbage Collection:
//
//   - Only expiring string keys need collection. Each SetEx with a non-zero
//     ttl registers the key's deadline in the shard's expire heap; overwrites
//     update the deadline, deletes remove the entry from the schedule.
//
//   - A single GC goroutine sweeps the per-shard heaps on a configurable
//     interval, removing entries whose deadline has passed. Before removal
//     the stored entry is re-checked, since the key may have been overwritten
//     with a later deadline between scheduling and collection.
//
//   - Since collection is asynchronous, GetS checks the deadline itself and
//     reports an expired key as absent even while the entry is still
//     physically present.
//
// The alder package is designed to serve as the storage backend for
// applications that need Redis-like ordered-index primitives in process,
// such as ranking indices, vote ledgers and short-lived claim keys.
package alder
