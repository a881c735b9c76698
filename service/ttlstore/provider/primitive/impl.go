package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/service/ttlstore/provider"
)

var timeNow = time.Now

type impl struct {
	name  string
	cache freecache.Cache
}

func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, *freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err != nil {
		if err == freecache.ErrNotFound {
			return nil, time.Duration(0), provider.ErrNotFound
		}
		c.WithField("err", err).WithField("key", key).Error("store.Get failed")
		return nil, time.Duration(0), err
	}
	// freecache reports the absolute expiry in epoch seconds
	remaining := time.Unix(int64(expireAt), 0).Sub(timeNow())
	if remaining < 0 {
		remaining = 0
	}
	return val, remaining, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		if err == freecache.ErrNotFound {
			return provider.ErrNotFound
		}
		c.WithField("err", err).WithField("key", key).Error("store.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
