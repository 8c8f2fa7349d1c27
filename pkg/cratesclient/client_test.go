package cratesclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratehub/crates-client/pkg/crates"
	"github.com/cratehub/crates-client/pkg/cratesclient"
)

const registryResponse = `{
	"crate": {
		"id": "serde",
		"name": "serde",
		"description": "A generic serialization/deserialization framework",
		"max_version": "1.0.219"
	},
	"versions": [
		{"id": 1, "num": "1.0.219", "yanked": false, "features": {"default": ["std"], "std": []}}
	],
	"categories": [],
	"keywords": []
}`

func newRegistry(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func TestOperatorUserAgent(t *testing.T) {
	t.Parallel()

	combined, err := cratesclient.OperatorUserAgent("my-tool (me@example.com)")
	require.NoError(t, err)
	assert.Equal(t, "my-tool (me@example.com) - Brought to you by: crates-client/1.0.0", combined)
}

func TestOperatorUserAgent_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{name: "empty", userAgent: ""},
		{name: "spaces", userAgent: "   "},
		{name: "tabs and newlines", userAgent: "\t\n "},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			combined, err := cratesclient.OperatorUserAgent(test.userAgent)
			require.Error(t, err)
			assert.True(t, crates.IsEmptyUserAgent(err))
			assert.Empty(t, combined)
		})
	}
}

func TestNew_RejectsBlankIdentification(t *testing.T) {
	t.Parallel()

	client, err := cratesclient.New(&crates.Config{UserAgent: " \t "})
	require.Error(t, err)
	assert.True(t, crates.IsEmptyUserAgent(err))
	assert.Nil(t, client)
}

func TestNew_SendsCombinedUserAgent(t *testing.T) {
	t.Parallel()

	var gotUserAgent string

	server := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(registryResponse))
	})

	client, err := cratesclient.New(&crates.Config{
		UserAgent: "my-tool",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	crate, err := client.Get(context.Background(), "serde")
	require.NoError(t, err)
	assert.Equal(t, "serde", crate.Crate.Name)
	assert.Equal(t, "my-tool - Brought to you by: crates-client/1.0.0", gotUserAgent)
}

func TestNew_NotFound(t *testing.T) {
	t.Parallel()

	server := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client, err := cratesclient.New(&crates.Config{
		UserAgent: "my-tool",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	crate, err := client.Get(context.Background(), "serdez")
	require.Error(t, err)
	assert.Nil(t, crate)
	assert.True(t, crates.IsNotFound(err))
}

func TestNewWithUserAgent(t *testing.T) {
	t.Parallel()

	client, err := cratesclient.NewWithUserAgent("my-tool")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = cratesclient.NewWithUserAgent("")
	require.Error(t, err)
	assert.True(t, crates.IsEmptyUserAgent(err))
}

func TestFetch_ValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	crate, err := cratesclient.Fetch(context.Background(), "serde", "  ")
	require.Error(t, err)
	assert.True(t, crates.IsEmptyUserAgent(err))
	assert.Nil(t, crate)
}

func TestFetchAsync_DeliversValidationFailure(t *testing.T) {
	t.Parallel()

	results := cratesclient.FetchAsync(context.Background(), "serde", "")

	result, ok := <-results
	require.True(t, ok)
	assert.Equal(t, "serde", result.Name)
	require.Error(t, result.Err)
	assert.True(t, crates.IsEmptyUserAgent(result.Err))

	_, ok = <-results
	assert.False(t, ok)
}

func TestClient_GetAsync_Delivers(t *testing.T) {
	t.Parallel()

	server := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(registryResponse))
	})

	client, err := cratesclient.New(&crates.Config{
		UserAgent: "my-tool",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	result := <-client.GetAsync(context.Background(), "serde")
	require.NoError(t, result.Err)
	require.NotNil(t, result.Crate)

	features, ok := result.Crate.FeaturesForVersion("1.0.219")
	require.True(t, ok)
	assert.Equal(t, []string{"std"}, features["default"])
}
