//go:build unit

package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHook_ProcessHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())

	ok := h.ProcessHook(func(_ context.Context, _ redis.Cmder) error { return nil })
	missing := h.ProcessHook(func(_ context.Context, _ redis.Cmder) error { return redis.Nil })
	failed := h.ProcessHook(func(_ context.Context, _ redis.Cmder) error { return errors.New("boom") })

	ctx := context.Background()
	_ = ok(ctx, redis.NewStringCmd(ctx, "get", "k"))
	assert.ErrorIs(t, missing(ctx, redis.NewStringCmd(ctx, "get", "k")), redis.Nil)
	assert.Error(t, failed(ctx, redis.NewStringCmd(ctx, "get", "k")))

	assert.Equal(t, 2.0, testutil.ToFloat64(h.commandCounter.WithLabelValues("get", statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.commandCounter.WithLabelValues("get", statusError)))
}
