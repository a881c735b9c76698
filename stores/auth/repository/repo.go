package repository

import (
	"strconv"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/keys"
	"github.com/nuna-market/goapi/service/redis"
)

// nonceTTL bounds how long an issued nonce stays signable
const nonceTTL = 10 * time.Minute

type impl struct {
	redis redis.Service
}

func New(redis redis.Service) domain.AuthNonceRepo {
	return &impl{
		redis: redis,
	}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxAuthNonce, address.ToLowerStr())
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (int32, error) {
	val, err := im.redis.Get(c, nonceKey(address))
	if err == redis.ErrNotFound {
		return 0, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return 0, err
	}
	nonce, err := strconv.ParseInt(string(val), 10, 32)
	if err != nil {
		c.WithField("err", err).Error("strconv.ParseInt failed")
		return 0, err
	}
	return int32(nonce), nil
}

func (im *impl) Set(c ctx.Ctx, address domain.Address, nonce int32) error {
	val := []byte(strconv.Itoa(int(nonce)))
	if err := im.redis.Set(c, nonceKey(address), val, nonceTTL); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, address domain.Address) error {
	if _, err := im.redis.Del(c, nonceKey(address)); err != nil {
		c.WithField("err", err).Error("redis.Del failed")
		return err
	}
	return nil
}
