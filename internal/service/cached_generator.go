package service

import (
	"context"
	"errors"
	"time"

	"edugenie/internal/cache"
	"edugenie/internal/domain"
	"edugenie/internal/logger"
	"edugenie/internal/port"
	"edugenie/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// cachedContentGenerator reuses model replies for identical prompts. Concurrent calls
// for the same prompt share one upstream request. Cache failures never fail a call.
type cachedContentGenerator struct {
	next    port.ContentGenerator
	store   domain.Cache
	model   string
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedContentGenerator wraps next with a response cache. model names the provider and
// model behind next so replies never cross a model switch. A nil store returns next unchanged.
func NewCachedContentGenerator(next port.ContentGenerator, store domain.Cache, model string, ttl time.Duration) port.ContentGenerator {
	if store == nil {
		logger.Get().Warn("Content generator cache initialized with nil cache. Caching disabled.")
		return next
	}
	return &cachedContentGenerator{next: next, store: store, model: model, ttl: ttl}
}

func (c *cachedContentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	key := cache.GenerationResponseKey(c.model, prompt)

	cached, err := c.store.Get(ctx, key)
	if err == nil {
		logger.Get().Debug("Generation cache hit", zap.String("key", key))
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Generation cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := c.sfGroup.Do(key, func() (interface{}, error) {
		out, genErr := c.next.Generate(ctx, prompt)
		if genErr != nil {
			return "", genErr
		}
		// Replies that would fail parsing are not worth replaying.
		if _, decodeErr := util.DecodeJSONObject(util.StripCodeFences(out)); decodeErr == nil {
			if setErr := c.store.Set(ctx, key, out, c.ttl); setErr != nil {
				logger.Get().Warn("Generation cache write failed", zap.String("key", key), zap.Error(setErr))
			}
		}
		return out, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		logger.Get().Debug("Shared in-flight generation", zap.String("key", key))
	}
	return v.(string), nil
}
