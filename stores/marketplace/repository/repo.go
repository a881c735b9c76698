package repository

import (
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/marketplace"
	"github.com/nuna-market/goapi/service/ttlstore"
)

// configKey addresses the single config record under the marketplace prefix
const configKey = "config"

type impl struct {
	store ttlstore.Service
}

func New(store ttlstore.Service) marketplace.Repo {
	return &impl{
		store: store,
	}
}

func (im *impl) Get(c ctx.Ctx) (*marketplace.Config, error) {
	cfg := &marketplace.Config{}
	if err := im.store.Get(c, configKey, cfg); err == ttlstore.ErrNotFound {
		return nil, domain.ErrNotInitialized
	} else if err != nil {
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return cfg, nil
}

func (im *impl) Set(c ctx.Ctx, cfg *marketplace.Config) error {
	if err := im.store.Set(c, configKey, cfg); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return err
	}
	return nil
}

func (im *impl) NextListingId(c ctx.Ctx) (domain.ListingId, error) {
	cfg, err := im.Get(c)
	if err != nil {
		return 0, err
	}
	id := cfg.NextListingId
	cfg.NextListingId = id + 1
	if err := im.Set(c, cfg); err != nil {
		return 0, err
	}
	return domain.ListingId(id), nil
}

func (im *impl) NextOfferId(c ctx.Ctx) (domain.OfferId, error) {
	cfg, err := im.Get(c)
	if err != nil {
		return 0, err
	}
	id := cfg.NextOfferId
	cfg.NextOfferId = id + 1
	if err := im.Set(c, cfg); err != nil {
		return 0, err
	}
	return domain.OfferId(id), nil
}
