package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
)

func TestPartialEmpty(t *testing.T) {
	assert.True(t, Partial{}.Empty())

	amount := decimal.NewFromFloat(9.99)
	assert.False(t, Partial{Amount: &amount}.Empty())

	note := "Corner Deli"
	assert.False(t, Partial{Note: &note}.Empty())
}

func TestRetryRecoversTransientFailure(t *testing.T) {
	amount := decimal.NewFromFloat(12.50)
	mock := &MockParser{Err: common.ErrRateLimit}

	var got Partial
	err := common.WithRetry(context.Background(), func() error {
		if mock.Calls == 2 {
			mock.Err = nil
			mock.Result = Partial{Amount: &amount}
		}
		var parseErr error
		got, parseErr = mock.Parse(context.Background(), nil, "image/png")
		return parseErr
	}, common.RetryOptions{MaxAttempts: 4, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, mock.Calls)
	require.NotNil(t, got.Amount)
	assert.True(t, got.Amount.Equal(amount))
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := &MockParser{Err: errors.New("boom")}

	err := common.WithRetry(context.Background(), func() error {
		_, parseErr := mock.Parse(context.Background(), nil, "image/png")
		return parseErr
	}, common.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond})

	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, 2, mock.Calls)
}
