// Package common provides core data structures and utilities shared across
// the ranking engine's RPC system. It defines fundamental types,
// configuration structures, and protocol elements used by other packages.
//
// The package focuses on:
//   - Message protocol definition for client/server communication
//   - Configuration structures for client and server components
//   - Custom logging implementation shared by all packages
//   - Wire representations of the domain types with conversion helpers
//
// Key Components:
//
//   - Message: Core data structure for all RPC communication, with a flexible
//     structure that adapts to different operation types. Includes factory
//     methods for creating various request and response messages.
//
//   - MessageType: Enumeration defining all supported operations, categorized
//     into submission, listing, user and category operations plus control
//     messages.
//
//   - Submission, User, Category: Wire representations of the domain types
//     with explicit json tags and conversion helpers to and from the domain
//     package.
//
//   - ServerConfig: Configuration for the server, covering the transport
//     endpoint, timeouts, worker limits, engine sharding and logging.
//
//   - ClientConfig: Configuration for client components, controlling
//     connection parameters, timeouts, and retry behavior.
//
//   - Logger: Custom logging implementation with consistent formatting
//     across the application, installed as the global logger factory.
package common
