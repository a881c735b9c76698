package repository

import (
	"testing"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/keys"
	"github.com/nuna-market/goapi/domain/listing"
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
	provider := primitive.NewPrimitive("testing", 1)
	store := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: time.Minute,
			Extend:    time.Hour,
		},
		Pfx:   keys.PfxListing,
		Store: provider,
	})
	index := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: time.Minute,
			Extend:    2 * time.Hour,
		},
		Pfx:   keys.PfxListing,
		Store: provider,
	})
	s.im = New(store, index).(*impl)
}

func (s *repoSuite) fixture(id domain.ListingId) *listing.Listing {
	return &listing.Listing{
		ListingId:   id,
		ChainId:     1,
		NftContract: "0xDCF0de6b17785A143d006e1515A6afd123CDE8ba",
		TokenId:     "42",
		Seller:      "0xCE4468e7cE84aceB74363F4EA64e5A038176F369",
		Price:       "1000",
		Status:      listing.StatusActive,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *repoSuite) TestFindOneNotFound() {
	_, err := s.im.FindOne(mockCtx, 1)
	s.Equal(domain.ErrListingNotFound, err)
}

func (s *repoSuite) TestCreateLowercasesAddresses() {
	s.NoError(s.im.Create(mockCtx, s.fixture(1)))

	got, err := s.im.FindOne(mockCtx, 1)
	s.NoError(err)
	s.Equal(domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba"), got.NftContract)
	s.Equal(domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369"), got.Seller)
}

func (s *repoSuite) TestUpdateStatus() {
	s.NoError(s.im.Create(mockCtx, s.fixture(1)))

	status := listing.StatusSold
	s.NoError(s.im.Update(mockCtx, 1, listing.Patchable{Status: &status}))

	got, err := s.im.FindOne(mockCtx, 1)
	s.NoError(err)
	s.Equal(listing.StatusSold, got.Status)
}

func (s *repoSuite) TestUpdateMissing() {
	status := listing.StatusSold
	s.Equal(domain.ErrListingNotFound, s.im.Update(mockCtx, 9, listing.Patchable{Status: &status}))
}

func (s *repoSuite) TestActiveIdsEmpty() {
	ids, err := s.im.ActiveIds(mockCtx)
	s.NoError(err)
	s.Equal([]domain.ListingId{}, ids)
}

func (s *repoSuite) TestAddActiveIdDedupes() {
	s.NoError(s.im.AddActiveId(mockCtx, 1))
	s.NoError(s.im.AddActiveId(mockCtx, 2))
	s.NoError(s.im.AddActiveId(mockCtx, 1))

	ids, err := s.im.ActiveIds(mockCtx)
	s.NoError(err)
	s.Equal([]domain.ListingId{1, 2}, ids)
}

func (s *repoSuite) TestRemoveActiveId() {
	s.NoError(s.im.AddActiveId(mockCtx, 1))
	s.NoError(s.im.AddActiveId(mockCtx, 2))
	s.NoError(s.im.AddActiveId(mockCtx, 3))

	s.NoError(s.im.RemoveActiveId(mockCtx, 2))

	ids, err := s.im.ActiveIds(mockCtx)
	s.NoError(err)
	s.Equal([]domain.ListingId{1, 3}, ids)
}

func (s *repoSuite) TestRemoveActiveIdMissingIsNoop() {
	s.NoError(s.im.AddActiveId(mockCtx, 1))
	s.NoError(s.im.RemoveActiveId(mockCtx, 9))

	ids, err := s.im.ActiveIds(mockCtx)
	s.NoError(err)
	s.Equal([]domain.ListingId{1}, ids)
}

func (s *repoSuite) TestRecordExpiryLeavesIndexStale() {
	provider := primitive.NewPrimitive("testing", 1)
	store := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: time.Millisecond,
			Extend:    time.Second,
		},
		Pfx:   keys.PfxListing,
		Store: provider,
	})
	index := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: time.Minute,
			Extend:    time.Hour,
		},
		Pfx:   keys.PfxListing,
		Store: provider,
	})
	im := New(store, index).(*impl)

	s.NoError(im.Create(mockCtx, s.fixture(1)))
	s.NoError(im.AddActiveId(mockCtx, 1))

	time.Sleep(2 * time.Second)

	_, err := im.FindOne(mockCtx, 1)
	s.Equal(domain.ErrListingNotFound, err)

	// index keeps its own lifetime and still names the evicted record
	ids, err := im.ActiveIds(mockCtx)
	s.NoError(err)
	s.Equal([]domain.ListingId{1}, ids)
}
