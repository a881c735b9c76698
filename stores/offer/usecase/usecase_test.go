package usecase

import (
	"testing"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	mAccount "github.com/nuna-market/goapi/domain/account/mocks"
	"github.com/nuna-market/goapi/domain/marketplace"
	mMarketplace "github.com/nuna-market/goapi/domain/marketplace/mocks"
	"github.com/nuna-market/goapi/domain/offer"
	mOffer "github.com/nuna-market/goapi/domain/offer/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var mockCtx = ctx.Background()

var (
	buyer       = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	stranger    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	nftContract = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	payToken    = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	tokenId     = domain.TokenId("42")
)

type offerSuite struct {
	suite.Suite

	offerRepo       *mOffer.Repo
	marketplaceRepo *mMarketplace.Repo
	activityRepo    *mAccount.ActivityHistoryRepo
	im              *offerUseCase
}

func TestOfferSuite(t *testing.T) {
	suite.Run(t, new(offerSuite))
}

func (s *offerSuite) SetupTest() {
	s.offerRepo = &mOffer.Repo{}
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.activityRepo = &mAccount.ActivityHistoryRepo{}
	s.im = New(&OfferUseCaseCfg{
		Offer:           s.offerRepo,
		Marketplace:     s.marketplaceRepo,
		ActivityHistory: s.activityRepo,
	}).(*offerUseCase)
}

func (s *offerSuite) TearDownTest() {
	s.offerRepo.AssertExpectations(s.T())
	s.marketplaceRepo.AssertExpectations(s.T())
}

func (s *offerSuite) config() *marketplace.Config {
	return &marketplace.Config{
		Admin:          stranger,
		PlatformFeeBps: 250,
		FeeRecipient:   stranger,
		PayToken:       payToken,
		ChainId:        1,
		NextListingId:  1,
		NextOfferId:    3,
	}
}

func (s *offerSuite) TestCreate() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()
	s.marketplaceRepo.On("NextOfferId", mockCtx).Return(domain.OfferId(3), nil).Once()
	s.offerRepo.On("Create", mockCtx, mock.MatchedBy(func(o *offer.Offer) bool {
		return o.OfferId == 3 && o.Buyer == buyer && o.Amount == "500"
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	id, err := s.im.Create(mockCtx, 1, nftContract, tokenId, buyer, "500", nil)
	s.NoError(err)
	s.Equal(domain.OfferId(3), id)
}

func (s *offerSuite) TestCreateNotInitialized() {
	s.marketplaceRepo.On("Get", mockCtx).Return(nil, domain.ErrNotInitialized).Once()

	_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, buyer, "500", nil)
	s.Equal(domain.ErrNotInitialized, err)
}

func (s *offerSuite) TestCreateWrongChain() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()

	_, err := s.im.Create(mockCtx, 2, nftContract, tokenId, buyer, "500", nil)
	s.Equal(domain.ErrInvalidChainId, err)
}

func (s *offerSuite) TestCreateInvalidAmount() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Twice()

	_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, buyer, "0", nil)
	s.Equal(domain.ErrInvalidPrice, err)

	_, err = s.im.Create(mockCtx, 1, nftContract, tokenId, buyer, "abc", nil)
	s.Equal(domain.ErrInvalidPrice, err)
}

func (s *offerSuite) TestCreatePastExpiry() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()

	past := timeNow().Add(-time.Minute)
	_, err := s.im.Create(mockCtx, 1, nftContract, tokenId, buyer, "500", &past)
	s.Equal(domain.ErrInvalidExpiry, err)
}

func (s *offerSuite) TestCancel() {
	o := &offer.Offer{OfferId: 3, Buyer: buyer, Amount: "500"}

	s.offerRepo.On("FindOne", mockCtx, domain.OfferId(3)).Return(o, nil).Once()
	s.offerRepo.On("Remove", mockCtx, domain.OfferId(3)).Return(nil).Once()
	s.marketplaceRepo.On("Get", mockCtx).Return(s.config(), nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Cancel(mockCtx, 3, buyer))
}

func (s *offerSuite) TestCancelNotBuyer() {
	o := &offer.Offer{OfferId: 3, Buyer: buyer, Amount: "500"}

	s.offerRepo.On("FindOne", mockCtx, domain.OfferId(3)).Return(o, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Cancel(mockCtx, 3, stranger))
	s.offerRepo.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *offerSuite) TestCancelNotFound() {
	s.offerRepo.On("FindOne", mockCtx, domain.OfferId(3)).Return(nil, domain.ErrOfferNotFound).Once()

	s.Equal(domain.ErrOfferNotFound, s.im.Cancel(mockCtx, 3, buyer))
}
