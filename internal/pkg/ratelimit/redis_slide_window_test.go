//go:build e2e

package ratelimit

import (
	"testing"
	"time"

	testioc "gitee.com/flycash/school-notification/internal/test/ioc"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRedisSlidingWindowLimiter(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisSlidingWindowLimiterTestSuite))
}

type RedisSlidingWindowLimiterTestSuite struct {
	suite.Suite
	rdb *redis.Client
}

func (s *RedisSlidingWindowLimiterTestSuite) SetupSuite() {
	s.rdb = testioc.InitRedis()
}

func (s *RedisSlidingWindowLimiterTestSuite) TearDownTest() {
	t := s.T()
	keys, err := s.rdb.Keys(t.Context(), "ratelimit:*").Result()
	require.NoError(t, err)
	if len(keys) > 0 {
		require.NoError(t, s.rdb.Del(t.Context(), keys...).Err())
	}
}

func (s *RedisSlidingWindowLimiterTestSuite) TestLimit() {
	t := s.T()
	limiter := NewRedisSlidingWindowLimiter(s.rdb, 500*time.Millisecond, 2)
	key := "test_send:1"

	for i := 0; i < 2; i++ {
		limited, err := limiter.Limit(t.Context(), key)
		require.NoError(t, err)
		assert.False(t, limited)
	}
	limited, err := limiter.Limit(t.Context(), key)
	require.NoError(t, err)
	assert.True(t, limited)

	// 其他 key 不受影响
	limited, err = limiter.Limit(t.Context(), "test_send:2")
	require.NoError(t, err)
	assert.False(t, limited)

	// 窗口滑过之后恢复
	time.Sleep(600 * time.Millisecond)
	limited, err = limiter.Limit(t.Context(), key)
	require.NoError(t, err)
	assert.False(t, limited)
}
