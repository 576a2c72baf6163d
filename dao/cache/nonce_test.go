package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceStorage_Claim(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	s := NewNonceStorage(rdb)

	ok, err := s.Claim(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, NonceWindow, mr.TTL(NonceKey("n1")))

	ok, err = s.Claim(ctx, "n1")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(NonceWindow + time.Second)
	ok, err = s.Claim(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, ok)
}
