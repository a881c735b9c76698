package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	mAccount "github.com/nuna-market/goapi/domain/account/mocks"
	"github.com/nuna-market/goapi/domain/listing"
	mListing "github.com/nuna-market/goapi/domain/listing/mocks"
	"github.com/nuna-market/goapi/domain/marketplace"
	mMarketplace "github.com/nuna-market/goapi/domain/marketplace/mocks"
	mContract "github.com/nuna-market/goapi/service/chain/contract/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var mockCtx = ctx.Background()

var (
	seller      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	stranger    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	nftContract = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	payToken    = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	tokenId     = domain.TokenId("42")
)

type listingSuite struct {
	suite.Suite

	listingRepo     *mListing.Repo
	marketplaceRepo *mMarketplace.Repo
	erc721          *mContract.Erc721Contract
	activityRepo    *mAccount.ActivityHistoryRepo
	im              *listingUseCase
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.erc721 = &mContract.Erc721Contract{}
	s.activityRepo = &mAccount.ActivityHistoryRepo{}
	s.im = New(&ListingUseCaseCfg{
		Listing:         s.listingRepo,
		Marketplace:     s.marketplaceRepo,
		Erc721:          s.erc721,
		ActivityHistory: s.activityRepo,
	}).(*listingUseCase)
}

func (s *listingSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.marketplaceRepo.AssertExpectations(s.T())
	s.erc721.AssertExpectations(s.T())
}

func (s *listingSuite) config() *marketplace.Config {
	return &marketplace.Config{
		Admin:          seller,
		PlatformFeeBps: 250,
		FeeRecipient:   stranger,
		PayToken:       payToken,
		ChainId:        1,
		NextListingId:  7,
		NextOfferId:    1,
	}
}

func (s *listingSuite) TestCreate() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()
	s.erc721.On("OwnerOf", mockCtx, int32(1), nftContract.ToLowerStr(), big.NewInt(42)).Return(seller.ToLowerStr(), nil).Once()
	s.marketplaceRepo.On("NextListingId", mockCtx).Return(domain.ListingId(7), nil).Once()
	s.listingRepo.On("Create", mockCtx, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.ListingId == 7 && l.Status == listing.StatusActive && l.Price == "1000"
	})).Return(nil).Once()
	s.listingRepo.On("AddActiveId", mockCtx, domain.ListingId(7)).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	id, err := s.im.Create(mockCtx, 1, nftContract, tokenId, seller, "1000", nil)
	s.NoError(err)
	s.Equal(domain.ListingId(7), id)
}

func (s *listingSuite) TestCreateNotInitialized() {
	s.marketplaceRepo.On("Get", mockCtx).Return(nil, domain.ErrNotInitialized).Once()

	_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, seller, "1000", nil)
	s.Equal(domain.ErrNotInitialized, err)
}

func (s *listingSuite) TestCreateWrongChain() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()

	_, err := s.im.Create(mockCtx, 5, nftContract, tokenId, seller, "1000", nil)
	s.Equal(domain.ErrInvalidChainId, err)
}

func (s *listingSuite) TestCreateInvalidPrice() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Times(3)

	for _, price := range []string{"0", "-1", "1.5"} {
		_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, seller, price, nil)
		s.Equal(domain.ErrInvalidPrice, err)
	}
}

func (s *listingSuite) TestCreatePastExpiry() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()

	past := timeNow().Add(-time.Hour)
	_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, seller, "1000", &past)
	s.Equal(domain.ErrInvalidExpiry, err)
}

func (s *listingSuite) TestCreateNotOwner() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()
	s.erc721.On("OwnerOf", mockCtx, int32(1), nftContract.ToLowerStr(), big.NewInt(42)).Return(stranger.ToLowerStr(), nil).Once()

	_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, seller, "1000", nil)
	s.Equal(domain.ErrUnauthorized, err)
	s.marketplaceRepo.AssertNotCalled(s.T(), "NextListingId", mock.Anything)
}

func (s *listingSuite) TestCancel() {
	l := &listing.Listing{
		ListingId:   7,
		ChainId:     1,
		NftContract: nftContract,
		TokenId:     tokenId,
		Seller:      seller,
		Price:       "1000",
		Status:      listing.StatusActive,
	}

	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(7)).Return(l, nil).Once()
	s.listingRepo.On("Update", mockCtx, domain.ListingId(7), mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusCancelled
	})).Return(nil).Once()
	s.listingRepo.On("RemoveActiveId", mockCtx, domain.ListingId(7)).Return(nil).Once()
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Cancel(mockCtx, 7, seller))
}

func (s *listingSuite) TestCancelNotSeller() {
	l := &listing.Listing{ListingId: 7, Seller: seller, Status: listing.StatusActive}

	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(7)).Return(l, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Cancel(mockCtx, 7, stranger))
	s.listingRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCancelNotActive() {
	l := &listing.Listing{ListingId: 7, Seller: seller, Status: listing.StatusSold}

	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(7)).Return(l, nil).Once()

	s.Equal(domain.ErrListingNotActive, s.im.Cancel(mockCtx, 7, seller))
}

func (s *listingSuite) TestCancelNotFound() {
	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(7)).Return(nil, domain.ErrListingNotFound).Once()

	s.Equal(domain.ErrListingNotFound, s.im.Cancel(mockCtx, 7, seller))
}

func (s *listingSuite) TestGetActiveListingsFiltersStaleEntries() {
	expired := timeNow().Add(-time.Hour)
	active := &listing.Listing{ListingId: 1, Seller: seller, Status: listing.StatusActive}

	s.listingRepo.On("ActiveIds", mockCtx).Return([]domain.ListingId{1, 2, 3, 4}, nil).Once()
	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(1)).Return(active, nil).Once()
	// evicted record behind a stale index entry
	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(2)).Return(nil, domain.ErrListingNotFound).Once()
	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(3)).Return(&listing.Listing{ListingId: 3, Status: listing.StatusCancelled}, nil).Once()
	s.listingRepo.On("FindOne", mockCtx, domain.ListingId(4)).Return(&listing.Listing{ListingId: 4, Status: listing.StatusActive, ExpiresAt: &expired}, nil).Once()

	res, err := s.im.GetActiveListings(mockCtx)
	s.NoError(err)
	s.Equal([]*listing.Listing{active}, res)
}

func (s *listingSuite) TestGetActiveListingsEmpty() {
	s.listingRepo.On("ActiveIds", mockCtx).Return([]domain.ListingId{}, nil).Once()

	res, err := s.im.GetActiveListings(mockCtx)
	s.NoError(err)
	s.Empty(res)
}
