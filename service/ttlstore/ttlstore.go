package ttlstore

import (
	"errors"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/service/ttlstore/provider"
)

var (
	// ErrNotFound is returned for keys that were never written or whose ttl
	// elapsed. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("record not found or expired")
)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Policy controls record lifetime. Every read checks the remaining
// time to live and, when it has fallen below Threshold, renews the record
// so that its lifetime becomes Extend. Writes keep the longer of the
// current remaining lifetime and Extend.
type Policy struct {
	Threshold time.Duration
	Extend    time.Duration
}

// high order ttl store service
type Service interface {
	Get(c ctx.Ctx, key string, container interface{}) error
	// Has reports whether the key holds a live record, renewing it like Get
	Has(c ctx.Ctx, key string) (bool, error)
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Policy      Policy
	Pfx         string
	Store       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
