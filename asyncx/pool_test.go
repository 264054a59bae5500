package asyncx

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conversia-AI/craftable-convx/errx"
)

func double(_ context.Context, n int) (int, error) {
	return n * 2, nil
}

func TestPool_OrderedResults(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	results, err := Pool(context.Background(), items, 3, double)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12, 14, 16}, results)
}

func TestPool_Empty(t *testing.T) {
	results, err := Pool(context.Background(), []int{}, 4, double)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPool_InvalidWorkers(t *testing.T) {
	_, err := Pool(context.Background(), []int{1}, 0, double)
	assert.True(t, errx.IsCode(err, ErrPoolSize))
}

func TestPool_BoundsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	items := make([]int, 20)

	_, err := Pool(context.Background(), items, 4, func(_ context.Context, n int) (int, error) {
		current := running.Add(1)
		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return n, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestPool_CollectsErrors(t *testing.T) {
	boom := errors.New("odd")
	results, err := Pool(context.Background(), []int{1, 2, 3, 4}, 2, func(_ context.Context, n int) (int, error) {
		if n%2 == 1 {
			return 0, fmt.Errorf("item %d: %w", n, boom)
		}
		return n, nil
	})

	ec, ok := IsErrorCollection(err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, ec.Indexes())
	assert.True(t, ec.HasError(2))
	assert.Nil(t, ec.GetError(1))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{2, 4}, FilterSuccessful(results, err))
}

func TestPool_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Pool(ctx, []int{1, 2, 3}, 1, double)
	ec, ok := IsErrorCollection(err)
	require.True(t, ok)
	assert.Len(t, ec.Errors, 3)
	assert.True(t, errx.IsCode(ec.GetError(0), ErrCanceled))
}

func TestPoolFailFast(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	_, err := PoolFailFast(context.Background(), []int{1, 2, 3, 4, 5, 6}, 1, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Less(t, calls.Load(), int32(6))

	results, err := PoolFailFast(context.Background(), []int{1, 2}, 2, double)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, results)
}

func TestFilterSuccessful(t *testing.T) {
	assert.Equal(t, []int{1}, FilterSuccessful([]int{1}, nil))
	assert.Nil(t, FilterSuccessful([]int{1}, errors.New("other")))
}
