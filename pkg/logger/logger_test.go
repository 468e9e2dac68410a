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

	"github.com/dmitrymomot/toastkit/pkg/environment"
	"github.com/dmitrymomot/toastkit/pkg/logger"
)

type ctxKey struct{}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "toastd")),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(ctxKey{}).(string); ok {
				return logger.RequestID(v), true
			}
			return slog.Attr{}, false
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "toast shown", logger.ToastID("toast-1"), logger.Category("success"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "toast shown", rec["msg"])
	assert.Equal(t, "toastd", rec["service"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "toast-1", rec["toast_id"])
	assert.Equal(t, "success", rec["category"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("development logs debug as text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment(environment.Development, "toastd"))

		log.Debug("hello")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production drops debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment(environment.Production, "toastd"))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("shown")
		assert.Contains(t, buf.String(), `"env":"production"`)
	})
}

func TestWithFormat_Invalid(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "state", logger.State("visible").Key)
	assert.Equal(t, slog.Attr{}, logger.PageID(""))
	assert.Equal(t, "page_id", logger.PageID("page-1").Key)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("nothing happens")
}

func TestNewContextHandler(t *testing.T) {
	t.Parallel()

	base := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	assert.Same(t, base, logger.NewContextHandler(base, nil))

	var buf bytes.Buffer
	h := logger.NewContextHandler(slog.NewJSONHandler(&buf, nil),
		func(context.Context) (slog.Attr, bool) { return logger.Component("web"), true },
		func(context.Context) (slog.Attr, bool) { return logger.RequestID(""), true },
	)
	slog.New(h).With(logger.ToastID("toast-1")).Info("toast removed")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "web", rec["component"])
	assert.Equal(t, "toast-1", rec["toast_id"])
	assert.NotContains(t, rec, "")
	assert.NotContains(t, rec, "request_id")
}
