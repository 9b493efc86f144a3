package backend

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Execute(t *testing.T) {
	testCases := []struct {
		name        string
		limit       int
		tasks       int
		maxExpected int32
	}{
		{name: "bounded", limit: 2, tasks: 8, maxExpected: 2},
		{name: "single slot", limit: 1, tasks: 4, maxExpected: 1},
		{name: "unbounded", limit: 0, tasks: 4, maxExpected: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := NewPool(tc.limit)
			assert.Equal(t, tc.limit, pool.Limit())
			var running, peak int32
			release := make(chan struct{})
			wg := sync.WaitGroup{}
			wg.Add(tc.tasks)
			for i := 0; i < tc.tasks; i++ {
				go func() {
					defer wg.Done()
					_ = pool.Execute(context.Background(), func(ctx context.Context) error {
						current := atomic.AddInt32(&running, 1)
						for {
							old := atomic.LoadInt32(&peak)
							if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
								break
							}
						}
						<-release
						atomic.AddInt32(&running, -1)
						return nil
					})
				}()
			}
			time.Sleep(50 * time.Millisecond)
			close(release)
			wg.Wait()
			assert.LessOrEqual(t, atomic.LoadInt32(&peak), tc.maxExpected)
		})
	}
}

func TestPool_ExecuteCancelled(t *testing.T) {
	pool := NewPool(1)
	hold := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = pool.Execute(context.Background(), func(ctx context.Context) error {
			close(started)
			<-hold
			return nil
		})
	}()
	<-started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := pool.Execute(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	close(hold)
	require.Error(t, err)
	assert.False(t, called)
}

func TestConfig_Option(t *testing.T) {
	var nilConfig *Config
	_, ok := nilConfig.Option("x")
	assert.False(t, ok)

	config := &Config{Name: "registry", Options: map[string]interface{}{"chainId": 1337}}
	value, ok := config.Option("chainId")
	assert.True(t, ok)
	assert.Equal(t, 1337, value)
}
