package repository

import (
	"strconv"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/offer"
	"github.com/nuna-market/goapi/service/ttlstore"
)

type impl struct {
	store ttlstore.Service
}

func New(store ttlstore.Service) offer.Repo {
	return &impl{
		store: store,
	}
}

func offerKey(id domain.OfferId) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (im *impl) FindOne(c ctx.Ctx, id domain.OfferId) (*offer.Offer, error) {
	o := &offer.Offer{}
	if err := im.store.Get(c, offerKey(id), o); err == ttlstore.ErrNotFound {
		return nil, domain.ErrOfferNotFound
	} else if err != nil {
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return o, nil
}

func (im *impl) Create(c ctx.Ctx, o *offer.Offer) error {
	o.LowerCase()
	if err := im.store.Set(c, offerKey(o.OfferId), o); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, id domain.OfferId) error {
	if err := im.store.Del(c, offerKey(id)); err != nil {
		c.WithField("err", err).Error("store.Del failed")
		return err
	}
	return nil
}
