// Package crates provides types, interfaces, and helpers for working with the
// crates.io registry API.
//
// # Overview
//
// The crates package defines the domain types (Crate, CrateMetadata, Version,
// Category, Keyword), the error taxonomy for failed fetches, and the Client
// interface for retrieving crate metadata. A concrete implementation of the
// client is provided by the cratesclient package, which wires configuration
// and transport. Most consumers should import cratesclient to construct a
// client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/cratehub/crates-client/pkg/crates"
//	  "github.com/cratehub/crates-client/pkg/cratesclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cratesclient.New(&crates.Config{UserAgent: "my-app (me@example.com)"})
//	  if err != nil { log.Fatal(err) }
//
//	  crate, err := cli.Get(ctx, "serde")
//	  if err != nil { log.Fatal(err) }
//	  _ = crate
//	}
//
// # Errors
//
// Fetch failures are classified into a small taxonomy: ErrNotFound for a 404
// from the registry, ErrEmptyUserAgent for an invalid identification string,
// and RequestError for everything else. Helpers such as IsNotFound make it
// easy to branch on the common cases.
//
// # Concurrency
//
// Every fetch is an independent request/response exchange with no shared
// mutable state, so a single client is safe for concurrent use. GetAsync and
// the FetchExecutor provide channel-based surfaces for callers that want many
// fetches in flight at once.
package crates
