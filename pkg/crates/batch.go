package crates

import (
	"context"
	"sync"
	"time"

	"github.com/cratehub/crates-client/internal/constants"
)

// FetchOperation describes one crate to fetch in a batch.
type FetchOperation struct {
	Name     string
	Callback func(result *FetchResult)
}

// FetchExecutor fetches many crates concurrently over one Client, bounding
// the number of in-flight requests.
type FetchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewFetchExecutor creates a new fetch executor. A non-positive concurrency
// falls back to a small default.
func NewFetchExecutor(client Client, concurrency int) *FetchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &FetchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-fetch timeout.
func (e *FetchExecutor) SetTimeout(timeout time.Duration) {
	e.timeout = timeout
}

// Execute fetches every named crate and returns results in input order.
// Individual failures are reported per result, never as an overall error.
func (e *FetchExecutor) Execute(ctx context.Context, operations []FetchOperation) []FetchResult {
	results := make([]FetchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, e.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation FetchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			start := time.Now()
			crate, err := e.client.Get(opCtx, operation.Name)
			result := FetchResult{
				Name:     operation.Name,
				Crate:    crate,
				Err:      err,
				Duration: time.Since(start),
			}
			results[index] = result

			if operation.Callback != nil {
				operation.Callback(&result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

// FetchAll is a convenience wrapper over Execute for callers that only have
// crate names and no per-fetch callbacks.
func (e *FetchExecutor) FetchAll(ctx context.Context, names []string) []FetchResult {
	operations := make([]FetchOperation, len(names))
	for i, name := range names {
		operations[i] = FetchOperation{Name: name}
	}

	return e.Execute(ctx, operations)
}
