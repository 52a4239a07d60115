package worker

import (
	"context"
	"sync"
)

// Batch submits related jobs to a pool and collects their errors by key.
// Jobs run with the batch's context, not the pool's.
type Batch struct {
	ctx  context.Context
	pool *Pool
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs map[string]error
}

// NewBatch creates a batch whose jobs run under ctx
func NewBatch(ctx context.Context, pool *Pool) *Batch {
	return &Batch{ctx: ctx, pool: pool, errs: make(map[string]error)}
}

type batchJob struct {
	batch *Batch
	key   string
	fn    func(ctx context.Context) error
}

func (j *batchJob) Process(poolCtx context.Context) error {
	defer j.batch.wg.Done()

	ctx := j.batch.ctx
	if poolCtx.Err() != nil {
		ctx = poolCtx
	}
	var err error
	if err = ctx.Err(); err == nil {
		err = j.fn(ctx)
	}
	if err != nil {
		j.batch.record(j.key, err)
	}
	return nil
}

// Go queues fn under key, blocking while the pool queue is full.
// The first error per key is kept.
func (b *Batch) Go(key string, fn func(ctx context.Context) error) {
	b.wg.Add(1)
	job := &batchJob{batch: b, key: key, fn: fn}
	if err := b.pool.Enqueue(b.ctx, job); err != nil {
		b.record(key, err)
		b.wg.Done()
	}
}

func (b *Batch) record(key string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.errs[key]; !ok {
		b.errs[key] = err
	}
}

// Wait blocks until every queued job has finished and returns the errors by key
func (b *Batch) Wait() map[string]error {
	b.wg.Wait()
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]error, len(b.errs))
	for k, v := range b.errs {
		out[k] = v
	}
	return out
}
