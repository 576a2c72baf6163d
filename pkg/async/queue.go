package async

import (
	"context"
	"sync"

	"Forum/pkg/log"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Task 异步任务, 返回的错误只记录日志
type Task func(ctx context.Context) error

type job struct {
	name string
	fn   Task
}

// Queue 有界的后台任务队列, 提交方不等待结果
type Queue struct {
	jobs    chan job
	workers *pool.Pool
	pending sync.WaitGroup

	mu     sync.RWMutex
	closed bool
	ctx    context.Context
	cancel context.CancelFunc
}

func NewQueue(workers, size int) *Queue {
	if workers <= 0 {
		workers = 1
	}
	if size <= 0 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		jobs:    make(chan job, size),
		workers: pool.New().WithMaxGoroutines(workers),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		q.workers.Go(q.loop)
	}
	return q
}

func (q *Queue) loop() {
	for j := range q.jobs {
		q.run(j)
	}
}

func (q *Queue) run(j job) {
	defer q.pending.Done()

	var err error
	var catcher panics.Catcher
	catcher.Try(func() {
		err = j.fn(q.ctx)
	})
	if r := catcher.Recovered(); r != nil {
		log.L.Error("async task panic", zap.String("task", j.name), zap.Error(r.AsError()))
		return
	}
	if err != nil {
		log.L.Warn("async task failed", zap.String("task", j.name), zap.Error(err))
	}
}

// Submit 队列已满或已关闭时丢弃任务, 不阻塞调用方
func (q *Queue) Submit(name string, fn Task) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		log.L.Warn("async queue closed, task dropped", zap.String("task", name))
		return false
	}

	q.pending.Add(1)
	select {
	case q.jobs <- job{name: name, fn: fn}:
		return true
	default:
		q.pending.Done()
		log.L.Warn("async queue full, task dropped", zap.String("task", name))
		return false
	}
}

// Drain 等待已提交的任务执行完, 队列仍可继续使用
func (q *Queue) Drain() {
	q.pending.Wait()
}

// Close 停止接收新任务并等待队列清空
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.workers.Wait()
	q.cancel()
}
