// Package lstore implements a local, in-memory, single-node ordered-index
// store based on the store.IStore interface. It provides a thin wrapper
// around any db.OrderedKVDB implementation with feature detection. Data is
// stored entirely in memory and is not persisted between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - Direct integration with db.OrderedKVDB implementations
//   - Feature detection to handle unsupported operations gracefully
//   - Thread-safe operations for concurrent access
//
// Implementation Details:
//
//   - Feature Detection: Before executing operations, the store checks if the
//     underlying db.OrderedKVDB implementation supports the requested feature
//     through the SupportsFeature method. Unsupported operations return
//     appropriate error codes rather than failing silently or producing
//     undefined behavior.
//
//   - Batched Lookups: HGetAllMulti, HGetMulti and ZScoreMulti iterate the
//     underlying engine directly. For a local in-process engine this is
//     already a single logical round trip; remote IStore implementations can
//     map the same calls onto one wire request.
//
//   - Composition Architecture: The store follows a composition pattern where
//     the store.DBFactory factory function injects the underlying
//     db.OrderedKVDB implementation. This allows the store to work with any
//     compatible engine without modification.
//
// Thread Safety:
//
//	All operations in the local store are thread-safe. The underlying
//	db.OrderedKVDB implementation is expected to provide its own thread
//	safety guarantees for the actual storage operations.
//
// Usage Example:
//
//	// Create a store with an alder database backend
//	factory := func() db.OrderedKVDB { return alder.NewAlderDB(nil) }
//	st := lstore.NewLocalStore(factory)
//
//	// Claim a url for 48 hours
//	err := st.SetEx("url:https://example.org", "42", 172800)
//
//	// Read the claim back
//	value, exists, err := st.GetS("url:https://example.org")
//
// Suitable Use Cases:
//
//	The local store is ideal for:
//	- Ephemeral data that doesn't need to survive process restarts
//	- Single-node applications where distributed consensus is not required
//	- Testing and development environments
package lstore
