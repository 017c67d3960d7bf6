package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigglywizard/scanner-backend/types"
)

func TestRedis_SessionState(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	_, err := client.SessionState(ctx, "missing")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)

	report := &types.TokenReport{
		BuyTax:    3,
		Liquidity: types.Liquidity{USD: 80000, ETH: 30, Known: true},
		Flags:     []string{"proxy"},
	}
	require.NoError(t, client.UpdateSessionState(ctx, "s1", types.SucceededState(3, "0xabc", report)))

	got, err := client.SessionState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusSucceeded, got.Status())
	assert.Equal(t, uint64(3), got.Seq())
	r, ok := got.Report()
	require.True(t, ok)
	assert.Equal(t, report, r)

	require.NoError(t, client.UpdateSessionState(ctx, "s1", types.FailedState(4, "0xabc", types.ScanFailedMessage)))
	got, err = client.SessionState(ctx, "s1")
	require.NoError(t, err)
	_, ok = got.Report()
	assert.False(t, ok)

	require.NoError(t, client.DeleteSession(ctx, "s1"))
	_, err = client.SessionState(ctx, "s1")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
}
