package repository_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/internal/repository"
	"github.com/chanseok/rememberme/internal/repository/repositorytest"
)

// memCache is an in-memory repository.Cache. err, when set, fails every command.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(ctx context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return redis.NewStringResult("", c.err)
	}
	v, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *memCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return redis.NewStatusResult("", c.err)
	}
	c.data[key] = string(value.([]byte))
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (c *memCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return redis.NewIntResult(0, c.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := c.data[k]; ok {
			delete(c.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

var apple = repository.Word{
	ID:            7,
	Word:          "apple",
	Meaning:       "사과",
	Pronunciation: "ˈæp.əl",
	CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestCachedQuerierGetWordByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &repositorytest.MockQuerier{}
	db.On("GetWordByID", ctx, int64(7)).Return(apple, nil).Once()

	cache := newMemCache()
	q := repository.NewCachedQuerier(db, cache, time.Minute, nil)

	got, err := q.GetWordByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, apple, got)
	assert.Equal(t, time.Minute, cache.ttls["rememberme:word:7"])

	// second read is served from the cache
	got, err = q.GetWordByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, apple, got)

	db.AssertExpectations(t)
}

func TestCachedQuerierMissIsNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &repositorytest.MockQuerier{}
	db.On("GetWordByID", ctx, int64(404)).Return(repository.Word{}, pgx.ErrNoRows).Twice()

	cache := newMemCache()
	q := repository.NewCachedQuerier(db, cache, 0, nil)

	for range 2 {
		_, err := q.GetWordByID(ctx, 404)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	}
	assert.Empty(t, cache.data)
	db.AssertExpectations(t)
}

func TestCachedQuerierInvalidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	updated := apple
	updated.Meaning = "사과 (과일)"

	db := &repositorytest.MockQuerier{}
	db.On("GetWordByID", ctx, int64(7)).Return(apple, nil).Once()
	db.On("UpdateWord", ctx, mock.AnythingOfType("repository.UpdateWordParams")).Return(updated, nil).Once()
	db.On("GetWordByID", ctx, int64(7)).Return(updated, nil).Once()
	db.On("DeleteWord", ctx, int64(7)).Return(nil).Once()

	cache := newMemCache()
	q := repository.NewCachedQuerier(db, cache, time.Minute, nil)

	_, err := q.GetWordByID(ctx, 7)
	require.NoError(t, err)
	require.Contains(t, cache.data, "rememberme:word:7")

	_, err = q.UpdateWord(ctx, repository.UpdateWordParams{ID: 7, Word: "apple", Meaning: updated.Meaning})
	require.NoError(t, err)
	assert.NotContains(t, cache.data, "rememberme:word:7")

	got, err := q.GetWordByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, updated.Meaning, got.Meaning)

	require.NoError(t, q.DeleteWord(ctx, 7))
	assert.NotContains(t, cache.data, "rememberme:word:7")

	db.AssertExpectations(t)
}

func TestCachedQuerierFailedWriteKeepsCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &repositorytest.MockQuerier{}
	db.On("DeleteWord", ctx, int64(7)).Return(errors.New("db down")).Once()

	cache := newMemCache()
	cache.data["rememberme:word:7"] = `{"id":7}`
	q := repository.NewCachedQuerier(db, cache, time.Minute, nil)

	assert.Error(t, q.DeleteWord(ctx, 7))
	assert.Contains(t, cache.data, "rememberme:word:7")
}

func TestCachedQuerierFallsBackWhenCacheFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &repositorytest.MockQuerier{}
	db.On("GetWordByID", ctx, int64(7)).Return(apple, nil).Twice()
	db.On("DeleteWord", ctx, int64(7)).Return(nil).Once()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	cache := newMemCache()
	cache.err = errors.New("connection refused")
	q := repository.NewCachedQuerier(db, cache, time.Minute, log)

	for range 2 {
		got, err := q.GetWordByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, apple, got)
	}
	require.NoError(t, q.DeleteWord(ctx, 7))

	assert.Contains(t, buf.String(), "cache read failed")
	assert.Contains(t, buf.String(), "cache write failed")
	assert.Contains(t, buf.String(), "cache eviction failed")
	db.AssertExpectations(t)
}

func TestCachedQuerierCorruptEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &repositorytest.MockQuerier{}
	db.On("GetWordByID", ctx, int64(7)).Return(apple, nil).Once()

	cache := newMemCache()
	cache.data["rememberme:word:7"] = "not json"
	q := repository.NewCachedQuerier(db, cache, time.Minute, nil)

	got, err := q.GetWordByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, apple, got)
	assert.JSONEq(t, mustJSON(t, apple), cache.data["rememberme:word:7"])
}

func TestCachedQuerierPassesThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &repositorytest.MockQuerier{}
	db.On("CountWords", ctx).Return(int64(3), nil).Once()

	q := repository.NewCachedQuerier(db, newMemCache(), time.Minute, nil)
	n, err := q.CountWords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	db.AssertExpectations(t)
}
