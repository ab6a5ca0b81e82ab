// Package client implements the RPC client for the ranking engine. It
// provides an implementation of the INewsClient interface that communicates
// with a remote engine server via RPC.
//
// The package focuses on:
//   - Transparent RPC access to every engine operation
//   - Integration with the transport and serialization layers
//   - Conversion between wire and domain types
//
// Key Components:
//
//   - NewRPCNewsClient: Factory function that creates a client implementing
//     the INewsClient interface. This client forwards all operations to a
//     remote server via the configured transport layer.
//
// Usage Example:
//
//	// Configure the client
//	config := common.ClientConfig{
//	  Endpoints:              []string{"localhost:5000"},
//	  TimeoutSecond:          5,
//	  RetryCount:             3,
//	  ConnectionsPerEndpoint: 1,
//	}
//
//	// Create the client
//	c, _ := client.NewRPCNewsClient(config, tcp.NewTCPClientTransport(), serializer.NewJSONSerializer())
//	defer c.Close()
//
//	// Use the engine
//	sub, _ := c.CreateSubmission("a title", "https://example.org", 1, 0)
//	rank, rejection, _ := c.Vote(sub.ID, 2, news.DirectionUp)
//
// Performance Considerations:
//
//   - For applications that frequently fetch large hydrated pages, increasing
//     ConnectionsPerEndpoint can improve throughput by allowing parallel
//     requests.
//
//   - For small messages, a single connection per endpoint is often more
//     efficient due to reduced connection overhead.
//
// Thread Safety:
//
//	The client is thread-safe and can be used concurrently from multiple
//	goroutines without additional synchronization.
package client
