// Package server implements the RPC server for the ranking engine. It hosts
// the engine service over an embedded storage backend and exposes every
// engine operation through the message protocol defined in the common
// package.
//
// The package focuses on:
//   - Server-side RPC request handling for all engine operations
//   - Adapter pattern to decouple the engine from RPC mechanisms
//   - Construction of the embedded engine (storage facade plus service)
//
// Key Components:
//
//   - IRPCServerAdapter: Interface defining the contract for server adapters,
//     with the Handle method that processes incoming requests against the
//     engine service.
//
//   - NewNewsServerAdapter: Factory function creating the adapter that
//     translates RPC requests to engine service calls.
//
//   - NewRPCServer: Factory function creating a configured server with the
//     specified transport and serializer mechanisms.
//
// Usage Example:
//
//	// Create server configuration
//	config := common.ServerConfig{
//	  Endpoint:      "0.0.0.0:8080",
//	  TimeoutSecond: 5,
//	  LogLevel:      "info",
//	}
//
//	// Create and start the server
//	s := server.NewRPCServer(
//	  config,
//	  tcp.NewTCPDefaultServerTransport(),
//	  serializer.NewJSONSerializer(),
//	)
//
//	// Start the server
//	if err := s.Serve(); err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
//
// Thread Safety:
//
//	The server implementation is thread-safe and can handle concurrent
//	requests across multiple connections. Each request is processed
//	independently. The Serve method is not thread-safe and should be called
//	only once.
package server
