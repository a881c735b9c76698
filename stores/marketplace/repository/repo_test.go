package repository

import (
	"testing"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/keys"
	"github.com/nuna-market/goapi/domain/marketplace"
	"github.com/nuna-market/goapi/service/ttlstore"
	"github.com/nuna-market/goapi/service/ttlstore/provider/primitive"
	"github.com/stretchr/testify/suite"
)

var mockCtx = ctx.Background()

type repoSuite struct {
	suite.Suite
	im *impl
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupTest() {
	store := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: time.Minute,
			Extend:    time.Hour,
		},
		Pfx:   keys.PfxMarketplace,
		Store: primitive.NewPrimitive("testing", 1),
	})
	s.im = New(store).(*impl)
}

func (s *repoSuite) TestGetBeforeSet() {
	_, err := s.im.Get(mockCtx)
	s.Equal(domain.ErrNotInitialized, err)
}

func (s *repoSuite) TestSetThenGet() {
	cfg := &marketplace.Config{
		Admin:          "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		PlatformFeeBps: 250,
		FeeRecipient:   "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad",
		PayToken:       "0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6",
		ChainId:        1,
		NextListingId:  1,
		NextOfferId:    1,
	}
	s.NoError(s.im.Set(mockCtx, cfg))

	got, err := s.im.Get(mockCtx)
	s.NoError(err)
	s.Equal(cfg, got)
}

func (s *repoSuite) TestNextListingIdMonotonic() {
	cfg := &marketplace.Config{NextListingId: 1, NextOfferId: 1}
	s.NoError(s.im.Set(mockCtx, cfg))

	for want := uint64(1); want <= 5; want++ {
		id, err := s.im.NextListingId(mockCtx)
		s.NoError(err)
		s.Equal(domain.ListingId(want), id)
	}

	got, err := s.im.Get(mockCtx)
	s.NoError(err)
	s.Equal(uint64(6), got.NextListingId)
}

func (s *repoSuite) TestCountersAreIndependent() {
	cfg := &marketplace.Config{NextListingId: 1, NextOfferId: 1}
	s.NoError(s.im.Set(mockCtx, cfg))

	lid, err := s.im.NextListingId(mockCtx)
	s.NoError(err)
	s.Equal(domain.ListingId(1), lid)

	oid, err := s.im.NextOfferId(mockCtx)
	s.NoError(err)
	s.Equal(domain.OfferId(1), oid)

	got, err := s.im.Get(mockCtx)
	s.NoError(err)
	s.Equal(uint64(2), got.NextListingId)
	s.Equal(uint64(2), got.NextOfferId)
}

func (s *repoSuite) TestNextListingIdBeforeInitialize() {
	_, err := s.im.NextListingId(mockCtx)
	s.Equal(domain.ErrNotInitialized, err)
}
