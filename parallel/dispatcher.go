package parallel

import (
	"context"
	"sync"

	"github.com/databricks/databricks-sdk-go/logger"
)

// Tasks maps every task on a pool of workers. Results keep the order of
// tasks. The first error cancels the remaining work and is returned.
func Tasks[T, R any](ctx context.Context, workers int, tasks []T, mapper func(context.Context, T) (R, error)) ([]R, error) {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := &pool[T, R]{
		tasks:   tasks,
		mapper:  mapper,
		work:    make(chan int),
		results: make([]R, len(tasks)),
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.dispatch(ctx)
	p.wg.Wait()
	if p.firstErr != nil {
		return nil, p.firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.results, nil
}

type pool[T, R any] struct {
	tasks    []T
	mapper   func(context.Context, T) (R, error)
	work     chan int
	results  []R
	cancel   func()
	once     sync.Once
	firstErr error
	wg       sync.WaitGroup
}

func (p *pool[T, R]) dispatch(ctx context.Context) {
	defer close(p.work)
	for i := range p.tasks {
		select {
		case <-ctx.Done():
			return
		case p.work <- i:
		}
	}
}

func (p *pool[T, R]) fail(ctx context.Context, err error) {
	p.once.Do(func() {
		logger.Errorf(ctx, "%s", err)
		p.firstErr = err
		p.cancel()
	})
}

func (p *pool[T, R]) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	logger.Debugf(ctx, "Starting worker %d", id)
	for i := range p.work {
		result, err := p.mapper(ctx, p.tasks[i])
		if err != nil {
			p.fail(ctx, err)
			continue
		}
		p.results[i] = result
	}
}
