// Package cratesclient provides the main entry point for creating crates.io
// registry clients.
//
// New validates the caller identification string, combines it with the
// library's own identification, and wires the transport:
//
//	cli, err := cratesclient.New(&crates.Config{UserAgent: "my-app (me@example.com)"})
//	if err != nil { ... }
//	crate, err := cli.Get(ctx, "tokio")
//
// Callers that only need a single fetch can skip client construction and use
// the module-level Fetch and FetchAsync functions, which build an ephemeral
// client, perform the one request, and apply the same identification
// validation up front.
package cratesclient
