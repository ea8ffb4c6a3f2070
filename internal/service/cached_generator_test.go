package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"edugenie/internal/cache"
	"edugenie/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testModel = "gemini/gemini-1.5-flash"

func TestCachedContentGenerator_Hit(t *testing.T) {
	gen := new(MockContentGenerator)
	store := new(MockCache)
	ctx := context.Background()
	key := cache.GenerationResponseKey(testModel, "prompt")

	store.On("Get", ctx, key).Return(quizReply, nil).Once()

	cg := NewCachedContentGenerator(gen, store, testModel, time.Hour)
	got, err := cg.Generate(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, quizReply, got)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCachedContentGenerator_MissStoresValidReply(t *testing.T) {
	gen := new(MockContentGenerator)
	store := new(MockCache)
	ctx := context.Background()
	key := cache.GenerationResponseKey(testModel, "prompt")

	store.On("Get", ctx, key).Return("", domain.ErrCacheMiss).Once()
	gen.On("Generate", ctx, "prompt").Return(quizReply, nil).Once()
	store.On("Set", ctx, key, quizReply, time.Hour).Return(nil).Once()

	cg := NewCachedContentGenerator(gen, store, testModel, time.Hour)
	got, err := cg.Generate(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, quizReply, got)
	gen.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCachedContentGenerator_DoesNotStoreUnparseableReply(t *testing.T) {
	gen := new(MockContentGenerator)
	store := new(MockCache)
	ctx := context.Background()

	store.On("Get", ctx, mock.Anything).Return("", domain.ErrCacheMiss).Once()
	gen.On("Generate", ctx, "prompt").Return("I cannot help with that.", nil).Once()

	cg := NewCachedContentGenerator(gen, store, testModel, time.Hour)
	got, err := cg.Generate(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "I cannot help with that.", got)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedContentGenerator_CacheFailuresAreIgnored(t *testing.T) {
	gen := new(MockContentGenerator)
	store := new(MockCache)
	ctx := context.Background()

	store.On("Get", ctx, mock.Anything).Return("", errors.New("redis down")).Once()
	gen.On("Generate", ctx, "prompt").Return(quizReply, nil).Once()
	store.On("Set", ctx, mock.Anything, quizReply, time.Hour).Return(errors.New("redis down")).Once()

	cg := NewCachedContentGenerator(gen, store, testModel, time.Hour)
	got, err := cg.Generate(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, quizReply, got)
	store.AssertExpectations(t)
}

func TestCachedContentGenerator_PropagatesModelError(t *testing.T) {
	gen := new(MockContentGenerator)
	store := new(MockCache)
	ctx := context.Background()
	modelErr := errors.New("quota exceeded")

	store.On("Get", ctx, mock.Anything).Return("", domain.ErrCacheMiss).Once()
	gen.On("Generate", ctx, "prompt").Return("", modelErr).Once()

	cg := NewCachedContentGenerator(gen, store, testModel, time.Hour)
	_, err := cg.Generate(ctx, "prompt")
	assert.ErrorIs(t, err, modelErr)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewCachedContentGenerator_NilCache(t *testing.T) {
	gen := new(MockContentGenerator)
	assert.Same(t, gen, NewCachedContentGenerator(gen, nil, testModel, time.Hour))
}

// blockingGenerator counts calls and holds every call until release is closed.
type blockingGenerator struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	<-b.release
	return quizReply, nil
}

// missCache always misses and records nothing.
type missCache struct{}

func (missCache) Get(context.Context, string) (string, error) { return "", domain.ErrCacheMiss }
func (missCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}

func TestCachedContentGenerator_SharesInFlightCalls(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	cg := NewCachedContentGenerator(gen, missCache{}, testModel, time.Hour)
	ctx := context.Background()

	const callers = 5
	var wg sync.WaitGroup
	results := make([]string, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = cg.Generate(ctx, "same prompt")
	}()
	<-gen.started

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = cg.Generate(ctx, "same prompt")
		}(i)
	}
	// Give the followers time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(gen.release)
	wg.Wait()

	assert.Equal(t, int32(1), gen.calls.Load())
	for _, r := range results {
		assert.Equal(t, quizReply, r)
	}
}

func TestCachedContentGenerator_ModelSwitchMisses(t *testing.T) {
	gen := new(MockContentGenerator)
	store := new(MockCache)
	ctx := context.Background()
	oldKey := cache.GenerationResponseKey(testModel, "prompt")
	newKey := cache.GenerationResponseKey("openai/gpt-4o-mini", "prompt")
	require.NotEqual(t, oldKey, newKey)

	store.On("Get", ctx, newKey).Return("", domain.ErrCacheMiss).Once()
	gen.On("Generate", ctx, "prompt").Return(quizReply, nil).Once()
	store.On("Set", ctx, newKey, quizReply, time.Hour).Return(nil).Once()

	cg := NewCachedContentGenerator(gen, store, "openai/gpt-4o-mini", time.Hour)
	got, err := cg.Generate(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, quizReply, got)
	store.AssertNotCalled(t, "Get", ctx, oldKey)
	gen.AssertExpectations(t)
	store.AssertExpectations(t)
}
