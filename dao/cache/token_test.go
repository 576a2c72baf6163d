package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenStorage_IssueIfAbsent(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	s := NewAccessTokenStorage(rdb)

	at, err := s.IssueIfAbsent(ctx, "alice", "token-1", 11)
	require.NoError(t, err)
	assert.Equal(t, "token-1", at)

	at, err = s.IssueIfAbsent(ctx, "alice", "token-2", 11)
	require.NoError(t, err)
	assert.Equal(t, "token-1", at, "existing token must win")

	uid, ok, err := s.UserID(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(11), uid)

	login, err := s.Loginname(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", login)

	_, ok, err = s.UserID(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessTokenStorage_ConcurrentIssue(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	s := NewAccessTokenStorage(rdb)

	const n = 32
	results := make([]string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			at, err := s.IssueIfAbsent(ctx, "bob", fmt.Sprintf("candidate-%d", i), 3)
			if err == nil {
				results[i] = at
			}
		}(i)
	}
	wg.Wait()

	winner := results[0]
	require.NotEmpty(t, winner)
	for _, r := range results {
		assert.Equal(t, winner, r)
	}
	tokens, err := mr.HKeys(KeyAccessTokenLogin)
	require.NoError(t, err)
	assert.Equal(t, []string{winner}, tokens)
	uids, err := mr.HKeys(KeyAccessTokenUser)
	require.NoError(t, err)
	assert.Equal(t, []string{winner}, uids)
	assert.Equal(t, "bob", mr.HGet(KeyAccessTokenLogin, winner))
	assert.Equal(t, "3", mr.HGet(KeyAccessTokenUser, winner))
}

func TestAccessTokenStorage_Reset(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	s := NewAccessTokenStorage(rdb)

	existed, err := s.Reset(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = s.IssueIfAbsent(ctx, "carol", "token-c", 9)
	require.NoError(t, err)

	existed, err = s.Reset(ctx, "carol")
	require.NoError(t, err)
	assert.True(t, existed)

	at, err := s.Get(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, at)
	_, ok, err := s.UserID(ctx, "token-c")
	require.NoError(t, err)
	assert.False(t, ok)
	login, err := s.Loginname(ctx, "token-c")
	require.NoError(t, err)
	assert.Empty(t, login)
}
