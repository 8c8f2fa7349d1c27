package crates_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratehub/crates-client/pkg/crates"
)

// fakeClient serves canned crates for executor tests.
type fakeClient struct {
	mu    sync.Mutex
	calls int
	fail  map[string]error
}

func (f *fakeClient) Get(ctx context.Context, name string) (*crates.Crate, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if err, ok := f.fail[name]; ok {
		return nil, err
	}

	return &crates.Crate{
		Crate:    crates.CrateMetadata{Name: name},
		Versions: []crates.Version{{Num: "1.0.0"}},
	}, nil
}

func (f *fakeClient) GetAsync(ctx context.Context, name string) <-chan crates.FetchResult {
	results := make(chan crates.FetchResult, 1)

	go func() {
		defer close(results)

		start := time.Now()
		crate, err := f.Get(ctx, name)
		results <- crates.FetchResult{Name: name, Crate: crate, Err: err, Duration: time.Since(start)}
	}()

	return results
}

func TestFetchExecutor_FetchAll(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	executor := crates.NewFetchExecutor(client, 2)

	names := []string{"is-wsl", "is-docker", "is-interactive", "syn"}
	results := executor.FetchAll(context.Background(), names)

	require.Len(t, results, len(names))

	for i, result := range results {
		assert.Equal(t, names[i], result.Name)
		require.NoError(t, result.Err)
		assert.Equal(t, names[i], result.Crate.Crate.Name)
	}

	assert.Equal(t, len(names), client.calls)
}

func TestFetchExecutor_PartialFailure(t *testing.T) {
	t.Parallel()

	client := &fakeClient{fail: map[string]error{
		"tokioz": crates.ErrNotFound,
	}}
	executor := crates.NewFetchExecutor(client, 0) // falls back to default concurrency

	results := executor.FetchAll(context.Background(), []string{"tokio", "tokioz"})

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	assert.True(t, crates.IsNotFound(results[1].Err))
	assert.Nil(t, results[1].Crate)
}

func TestFetchExecutor_Callback(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	executor := crates.NewFetchExecutor(client, 1)
	executor.SetTimeout(5 * time.Second)

	var mu sync.Mutex

	seen := map[string]bool{}

	operations := make([]crates.FetchOperation, 0, 3)
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("crate-%d", i)
		operations = append(operations, crates.FetchOperation{
			Name: name,
			Callback: func(result *crates.FetchResult) {
				mu.Lock()
				defer mu.Unlock()
				seen[result.Name] = result.Err == nil
			},
		})
	}

	results := executor.Execute(context.Background(), operations)

	require.Len(t, results, 3)
	assert.Len(t, seen, 3)

	for _, ok := range seen {
		assert.True(t, ok)
	}
}
