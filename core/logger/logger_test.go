package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/core/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("production json", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("api"), logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("word created", logger.Component("words"), logger.Error(nil))
		got := decode(t, &buf)
		assert.Equal(t, "word created", got["msg"])
		assert.Equal(t, "api", got["service"])
		assert.Equal(t, "production", got["env"])
		assert.Equal(t, "words", got["component"])
		assert.NotContains(t, got, "error")
	})

	t.Run("level override", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithJSONFormatter(), logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("skip")
		assert.Zero(t, buf.Len())
		log.Warn("keep")
		assert.Equal(t, "keep", decode(t, &buf)["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("region", "kr")))

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "region=kr")
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(logger.Component("auth")).InfoContext(ctx, "login")

	got := decode(t, &buf)
	assert.Equal(t, "req-1", got["request_id"])
	assert.Equal(t, "auth", got["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "anonymous")
	assert.NotContains(t, decode(t, &buf), "request_id")
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.UserID(0).Equal(slog.Attr{}))
	assert.True(t, logger.Subject("").Equal(slog.Attr{}))
	assert.True(t, logger.WordID(0).Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))

	assert.Equal(t, "boom", logger.Error(errors.New("boom")).Value.Any().(error).Error())
	assert.Equal(t, "42", logger.UserID(42).Value.String())
	assert.Equal(t, "alice@example.com", logger.Subject("alice@example.com").Value.String())
	assert.Equal(t, int64(7), logger.WordID(7).Value.Int64())
	assert.Equal(t, int64(404), logger.StatusCode(404).Value.Int64())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nonsense"))
}
