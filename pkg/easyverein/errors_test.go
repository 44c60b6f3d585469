package easyverein_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	err := &easyverein.APIError{StatusCode: 400, Expected: 201, Body: "bad payload"}
	assert.Equal(t, "API returned status code 400 (expected 201): bad payload", err.Error())

	bare := &easyverein.APIError{StatusCode: 500, Body: "boom"}
	assert.Equal(t, "API returned status code 500: boom", bare.Error())
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("getting member: %w", &easyverein.NotFoundError{URL: "/member/7/"})
	assert.True(t, easyverein.IsNotFound(err))
	assert.False(t, easyverein.IsNotFound(assert.AnError))
	assert.False(t, easyverein.IsNotFound(nil))
}

func TestIsRateLimited(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("listing invoices: %w", &easyverein.RateLimitError{RetryAfter: 30})
	assert.True(t, easyverein.IsRateLimited(err))
	assert.Contains(t, err.Error(), "wait 30 seconds")
	assert.False(t, easyverein.IsRateLimited(&easyverein.NotFoundError{}))
}

func TestIsPreconditionFailed(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("creating invoice: %w", &easyverein.PreconditionError{Reason: "payload marks the invoice as final"})
	assert.True(t, easyverein.IsPreconditionFailed(err))
	assert.Contains(t, err.Error(), "precondition failed")
	assert.False(t, easyverein.IsPreconditionFailed(assert.AnError))
}
