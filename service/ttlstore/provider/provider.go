package provider

import (
	"errors"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
)

var (
	ErrNotFound = errors.New("record not found")
)

// raw ttl store implementation.
// Get returns the remaining time to live alongside the value so callers can
// decide whether the record needs renewal.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
