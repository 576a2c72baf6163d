package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_RunsSubmittedTasks(t *testing.T) {
	q := NewQueue(4, 64)
	defer q.Close()

	var n atomic.Int32
	for i := 0; i < 50; i++ {
		ok := q.Submit("incr", func(ctx context.Context) error {
			n.Add(1)
			return nil
		})
		assert.True(t, ok)
	}
	q.Drain()

	assert.Equal(t, int32(50), n.Load())
}

func TestQueue_FailuresAreIsolated(t *testing.T) {
	q := NewQueue(2, 16)
	defer q.Close()

	var n atomic.Int32
	q.Submit("fail", func(ctx context.Context) error {
		return errors.New("boom")
	})
	q.Submit("panic", func(ctx context.Context) error {
		panic("boom")
	})
	q.Submit("ok", func(ctx context.Context) error {
		n.Add(1)
		return nil
	})
	q.Drain()

	assert.Equal(t, int32(1), n.Load())
}

func TestQueue_FullQueueDropsWithoutBlocking(t *testing.T) {
	q := NewQueue(1, 1)
	defer q.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	q.Submit("block", func(ctx context.Context) error {
		close(started)
		<-block
		return nil
	})
	<-started

	assert.True(t, q.Submit("queued", func(ctx context.Context) error { return nil }))
	assert.False(t, q.Submit("dropped", func(ctx context.Context) error { return nil }))

	close(block)
	q.Drain()
}

func TestQueue_SubmitAfterClose(t *testing.T) {
	q := NewQueue(1, 1)
	q.Close()

	assert.False(t, q.Submit("late", func(ctx context.Context) error { return nil }))
}
