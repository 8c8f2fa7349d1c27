package crates_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cratehub/crates-client/pkg/crates"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, crates.IsNotFound(crates.ErrNotFound))
	assert.True(t, crates.IsNotFound(fmt.Errorf("getting crate: %w", crates.ErrNotFound)))
	assert.False(t, crates.IsNotFound(crates.ErrEmptyUserAgent))
	assert.False(t, crates.IsNotFound(errors.New("some error")))
	assert.False(t, crates.IsNotFound(nil))
}

func TestIsEmptyUserAgent(t *testing.T) {
	t.Parallel()

	assert.True(t, crates.IsEmptyUserAgent(crates.ErrEmptyUserAgent))
	assert.False(t, crates.IsEmptyUserAgent(crates.ErrNotFound))
}

func TestNotFoundMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "crate name is not found, check spelling.", crates.ErrNotFound.Error())
}

func TestRequestError_Error(t *testing.T) {
	t.Parallel()

	err := &crates.RequestError{
		StatusCode: 500,
		Status:     "500 Internal Server Error",
		Body:       "boom",
	}
	assert.Equal(t, "unexpected registry response 500 Internal Server Error: boom", err.Error())

	bare := &crates.RequestError{StatusCode: 503, Status: "503 Service Unavailable"}
	assert.Equal(t, "unexpected registry response 503 Service Unavailable", bare.Error())
}

func TestRequestError_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting crate: %w", &crates.RequestError{StatusCode: 500, Status: "500 Internal Server Error"})

	var reqErr *crates.RequestError

	assert.ErrorAs(t, wrapped, &reqErr)
	assert.Equal(t, 500, reqErr.StatusCode)
}
