package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chanseok/rememberme/core/logger"
)

// DefaultWordCacheTTL is used when NewCachedQuerier gets a non-positive TTL.
const DefaultWordCacheTTL = 10 * time.Minute

const wordCachePrefix = "rememberme:word:"

// Cache is the subset of the go-redis client used for word caching. *redis.Client implements it.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedQuerier keeps words in Redis as JSON so GetWordByID skips the database on a hit.
// Writes to a word drop its cache entry. Cache failures are logged and never fail the call.
type CachedQuerier struct {
	Querier
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedQuerier decorates q with a word cache stored in c.
func NewCachedQuerier(q Querier, c Cache, ttl time.Duration, log *slog.Logger) *CachedQuerier {
	if ttl <= 0 {
		ttl = DefaultWordCacheTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &CachedQuerier{
		Querier: q,
		cache:   c,
		ttl:     ttl,
		log:     log.With(logger.Component("word_cache")),
	}
}

func wordKey(id int64) string {
	return wordCachePrefix + strconv.FormatInt(id, 10)
}

func (c *CachedQuerier) GetWordByID(ctx context.Context, id int64) (Word, error) {
	key := wordKey(id)

	data, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var w Word
		if err := json.Unmarshal(data, &w); err == nil {
			return w, nil
		}
		c.log.WarnContext(ctx, "dropping corrupt cache entry", logger.Key("cache_key", key))
		c.evict(ctx, key)
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache read failed", logger.Key("cache_key", key), logger.Error(err))
	}

	w, err := c.Querier.GetWordByID(ctx, id)
	if err != nil {
		return w, err
	}
	c.store(ctx, key, w)
	return w, nil
}

func (c *CachedQuerier) UpdateWord(ctx context.Context, arg UpdateWordParams) (Word, error) {
	w, err := c.Querier.UpdateWord(ctx, arg)
	if err != nil {
		return w, err
	}
	c.evict(ctx, wordKey(arg.ID))
	return w, nil
}

func (c *CachedQuerier) DeleteWord(ctx context.Context, id int64) error {
	if err := c.Querier.DeleteWord(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, wordKey(id))
	return nil
}

func (c *CachedQuerier) store(ctx context.Context, key string, w Word) {
	data, err := json.Marshal(w)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", logger.Key("cache_key", key), logger.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache write failed", logger.Key("cache_key", key), logger.Error(err))
	}
}

func (c *CachedQuerier) evict(ctx context.Context, key string) {
	if err := c.cache.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "cache eviction failed", logger.Key("cache_key", key), logger.Error(err))
	}
}
