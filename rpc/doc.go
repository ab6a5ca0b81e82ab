// Package rpc provides a comprehensive framework for remote procedure calls
// in the ranking engine. It acts as the communication layer between clients
// and the engine server, enabling operations across network boundaries.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the RPC system,
//     including the Message protocol, wire types, configuration structures
//     and logging.
//
//   - transport: Network communication abstractions with pluggable
//     implementations (TCP, Unix sockets, HTTP).
//
//   - serializer: Message serialization with multiple format options (JSON,
//     GOB) for converting between Message objects and byte arrays.
//
//   - client: RPC client mirroring the engine's service surface, allowing
//     applications to interact with a remote engine transparently.
//
//   - server: RPC server components that handle incoming requests, hosting
//     the engine over an embedded storage backend.
package rpc
