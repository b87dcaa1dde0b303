package ratelimit

import "context"

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go -typed Limiter
type Limiter interface {
	// Limit 判断是否应该限流，true 表示要限流
	Limit(ctx context.Context, key string) (bool, error)
}
