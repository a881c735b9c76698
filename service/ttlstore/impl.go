package ttlstore

import (
	"encoding/json"
	"reflect"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain/keys"
	"github.com/nuna-market/goapi/service/ttlstore/provider"
)

type impl struct {
	policy      Policy
	pfx         string
	store       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if reflect.ValueOf(config.Serialize).IsNil() {
		config.Serialize = json.Marshal
	}

	if reflect.ValueOf(config.Deserialize).IsNil() {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		policy:      config.Policy,
		pfx:         config.Pfx,
		store:       config.Store,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, remaining, err := im.store.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("store.Get failed")
		return err
	}

	if remaining < im.policy.Threshold {
		if err := im.store.Set(c, key, val, im.policy.Extend); err != nil {
			c.WithField("err", err).WithField("key", key).Error("renew failed")
			return err
		}
	}

	if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}

	return nil
}

func (im *impl) Has(c ctx.Ctx, key string) (bool, error) {
	key = keys.RedisKey(im.pfx, key)

	val, remaining, err := im.store.Get(c, key)
	if err == provider.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("store.Get failed")
		return false, err
	}

	if remaining < im.policy.Threshold {
		if err := im.store.Set(c, key, val, im.policy.Extend); err != nil {
			c.WithField("err", err).WithField("key", key).Error("renew failed")
			return false, err
		}
	}

	return true, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}

	// writes never shorten an already-extended lifetime
	ttl := im.policy.Extend
	if _, remaining, err := im.store.Get(c, key); err == nil && remaining > ttl {
		ttl = remaining
	}

	if err := im.store.Set(c, key, val, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("store.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.store.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("store.Del failed")
		return err
	}

	return nil
}
