package repository

import (
	"strconv"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/listing"
	"github.com/nuna-market/goapi/service/ttlstore"
)

// activeKey addresses the active-listing index. The index lives in the
// long-lived store so it cannot be evicted ahead of the records it names.
const activeKey = "active"

type impl struct {
	store ttlstore.Service
	index ttlstore.Service
}

func New(store ttlstore.Service, index ttlstore.Service) listing.Repo {
	return &impl{
		store: store,
		index: index,
	}
}

func listingKey(id domain.ListingId) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (im *impl) FindOne(c ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	l := &listing.Listing{}
	if err := im.store.Get(c, listingKey(id), l); err == ttlstore.ErrNotFound {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return l, nil
}

func (im *impl) Create(c ctx.Ctx, l *listing.Listing) error {
	l.LowerCase()
	if err := im.store.Set(c, listingKey(l.ListingId), l); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, id domain.ListingId, patchable listing.Patchable) error {
	l, err := im.FindOne(c, id)
	if err != nil {
		return err
	}
	if patchable.Status != nil {
		l.Status = *patchable.Status
	}
	if err := im.store.Set(c, listingKey(id), l); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return err
	}
	return nil
}

func (im *impl) ActiveIds(c ctx.Ctx) ([]domain.ListingId, error) {
	ids := []domain.ListingId{}
	if err := im.index.Get(c, activeKey, &ids); err == ttlstore.ErrNotFound {
		return []domain.ListingId{}, nil
	} else if err != nil {
		c.WithField("err", err).Error("index.Get failed")
		return nil, err
	}
	return ids, nil
}

func (im *impl) AddActiveId(c ctx.Ctx, id domain.ListingId) error {
	ids, err := im.ActiveIds(c)
	if err != nil {
		return err
	}
	for _, cur := range ids {
		if cur == id {
			return nil
		}
	}
	ids = append(ids, id)
	if err := im.index.Set(c, activeKey, ids); err != nil {
		c.WithField("err", err).Error("index.Set failed")
		return err
	}
	return nil
}

func (im *impl) RemoveActiveId(c ctx.Ctx, id domain.ListingId) error {
	ids, err := im.ActiveIds(c)
	if err != nil {
		return err
	}
	filtered := ids[:0]
	for _, cur := range ids {
		if cur != id {
			filtered = append(filtered, cur)
		}
	}
	if len(filtered) == len(ids) {
		return nil
	}
	if err := im.index.Set(c, activeKey, filtered); err != nil {
		c.WithField("err", err).Error("index.Set failed")
		return err
	}
	return nil
}
