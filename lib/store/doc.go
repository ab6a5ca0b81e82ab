// Package store provides a high-level interface for ordered-index storage
// operations with unified error handling. It serves as an abstraction layer
// over the lower-level db.OrderedKVDB engines, adding feature detection,
// batched lookups and standardized error reporting.
//
// The package focuses on:
//   - A unified interface (IStore) for ordered-index operations across different backends
//   - Pluggable storage backend architecture through the DBFactory pattern
//
// Key Components:
//
//   - IStore Interface: The core abstraction defining operations for
//     interacting with an ordered-index store: hash records, atomic counters,
//     score-ordered sets and expiring string keys, plus the batched lookups
//     (HGetAllMulti, HGetMulti, ZScoreMulti) that let callers hydrate many
//     records in one logical round trip. The interface methods return custom
//     Error values that carry typed result codes.
//
//   - Error System: A structured error reporting mechanism using typed error
//     codes and descriptive messages. This system allows applications to make
//     informed decisions based on specific error conditions rather than
//     generic errors.
//
//   - DBFactory: A function type that abstracts the creation of underlying
//     db.OrderedKVDB instances, providing dependency injection and flexible
//     configuration of storage backends.
//
// Implementations:
//
//	The lstore package (github.com/edicola-dev/edicola/lib/store/lstore)
//	provides a local, non-distributed implementation that directly wraps a
//	db.OrderedKVDB instance. It checks feature support before every
//	operation and answers unsupported operations with a typed error instead
//	of failing silently.
//
// This interface-driven approach allows applications to:
//   - Switch storage backends without code changes
//   - Handle errors in a consistent and type-safe manner across implementations
//   - Abstract storage implementation details from application logic
package store
