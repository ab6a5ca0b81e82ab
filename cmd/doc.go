// Package cmd implements the command-line interface for the edicola ranking
// and voting engine. It provides a hierarchical command structure with
// operations for running the server and interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - news: Commands for submission operations (submit, vote, top, latest, etc.)
//   - user: Commands for user account operations (create, show, find)
//   - category: Commands for category operations (create, show, find)
//   - serve: Commands for starting and configuring the edicola server
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See edicola -help for a list of all commands.
package cmd
