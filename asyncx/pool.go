package asyncx

import (
	"context"
	"errors"
	"sync"
)

// Pool applies fn to every item with at most workers concurrent calls.
// Results keep the order of items. Failed items leave the zero value in
// results and are reported together as an *ErrorCollection; items not
// started because ctx ended are reported with ErrCanceled or ErrTimeout.
func Pool[T any, R any](ctx context.Context, items []T, workers int,
	fn func(ctx context.Context, item T) (R, error)) ([]R, error) {

	if workers <= 0 {
		return nil, ErrorRegistry.New(ErrPoolSize).WithDetail("provided", workers)
	}

	results := make([]R, len(items))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		errorMap = make(map[int]error)
	)
	fail := func(idx int, err error) {
		mu.Lock()
		errorMap[idx] = err
		mu.Unlock()
	}

	semaphore := make(chan struct{}, min(workers, max(len(items), 1)))

	for i, item := range items {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			for j := i; j < len(items); j++ {
				fail(j, contextError(ctx))
			}
			wg.Wait()
			return results, &ErrorCollection{Errors: errorMap, Operation: "Pool"}
		}

		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if ctx.Err() != nil {
				fail(idx, contextError(ctx))
				return
			}

			result, err := fn(ctx, it)
			if err != nil {
				fail(idx, err)
				return
			}
			results[idx] = result
		}(i, item)
	}

	wg.Wait()

	if len(errorMap) > 0 {
		return results, &ErrorCollection{Errors: errorMap, Operation: "Pool"}
	}
	return results, nil
}

// PoolFailFast is Pool that stops scheduling after the first failure and
// returns that error alone.
func PoolFailFast[T any, R any](ctx context.Context, items []T, workers int,
	fn func(ctx context.Context, item T) (R, error)) ([]R, error) {

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	results, err := Pool(ctx, items, workers, func(ctx context.Context, item T) (R, error) {
		r, err := fn(ctx, item)
		if err != nil {
			cancel(err)
		}
		return r, err
	})
	if err == nil {
		return results, nil
	}
	if cause := context.Cause(ctx); cause != nil &&
		!errors.Is(cause, context.Canceled) && !errors.Is(cause, context.DeadlineExceeded) {
		return nil, cause
	}
	return nil, err
}
