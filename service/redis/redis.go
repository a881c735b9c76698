package redis

import (
	"errors"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
)

// Forever means the key never expires
const Forever = time.Duration(0)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis: key has no ttl")
)

type Service interface {
	Get(ctx ctx.Ctx, key string) ([]byte, error)
	Set(ctx ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(ctx ctx.Ctx, keys ...string) (int, error)
	Exists(ctx ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining time to live of a key in seconds
	TTL(ctx ctx.Ctx, key string) (int, error)
	Incrby(ctx ctx.Ctx, key string, val int) (int64, error)
	Expire(ctx ctx.Ctx, key string, ttl time.Duration) error
}
