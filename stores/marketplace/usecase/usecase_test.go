package usecase

import (
	"testing"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	mAccount "github.com/nuna-market/goapi/domain/account/mocks"
	"github.com/nuna-market/goapi/domain/marketplace"
	mMarketplace "github.com/nuna-market/goapi/domain/marketplace/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var mockCtx = ctx.Background()

var (
	admin        = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	feeRecipient = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	payToken     = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	stranger     = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
)

type marketplaceSuite struct {
	suite.Suite

	marketplaceRepo *mMarketplace.Repo
	activityRepo    *mAccount.ActivityHistoryRepo
	im              *marketplaceUseCase
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.activityRepo = &mAccount.ActivityHistoryRepo{}
	s.im = New(&MarketplaceUseCaseCfg{
		Marketplace:     s.marketplaceRepo,
		ActivityHistory: s.activityRepo,
	}).(*marketplaceUseCase)
}

func (s *marketplaceSuite) TearDownTest() {
	s.marketplaceRepo.AssertExpectations(s.T())
	s.activityRepo.AssertExpectations(s.T())
}

func (s *marketplaceSuite) storedConfig() *marketplace.Config {
	return &marketplace.Config{
		Admin:          admin,
		PlatformFeeBps: 250,
		FeeRecipient:   feeRecipient,
		PayToken:       payToken,
		ChainId:        1,
		NextListingId:  1,
		NextOfferId:    1,
	}
}

func (s *marketplaceSuite) TestInitialize() {
	s.marketplaceRepo.On("Get", mockCtx).Return(nil, domain.ErrNotInitialized).Once()
	s.marketplaceRepo.On("Set", mockCtx, s.storedConfig()).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Initialize(mockCtx, admin, 250, feeRecipient, payToken, 1))
}

func (s *marketplaceSuite) TestInitializeSeedsCounters() {
	s.marketplaceRepo.On("Get", mockCtx).Return(nil, domain.ErrNotInitialized).Once()
	s.marketplaceRepo.On("Set", mockCtx, mock.MatchedBy(func(cfg *marketplace.Config) bool {
		return cfg.NextListingId == 1 && cfg.NextOfferId == 1
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Initialize(mockCtx, admin, 250, feeRecipient, payToken, 1))
}

func (s *marketplaceSuite) TestInitializeTwice() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()

	s.Equal(domain.ErrAlreadyInitialized, s.im.Initialize(mockCtx, admin, 250, feeRecipient, payToken, 1))
	s.marketplaceRepo.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestInitializeFeeOutOfRange() {
	s.marketplaceRepo.On("Get", mockCtx).Return(nil, domain.ErrNotInitialized).Twice()

	s.Equal(domain.ErrInvalidFee, s.im.Initialize(mockCtx, admin, marketplace.MaxFeeBps+1, feeRecipient, payToken, 1))
	s.Equal(domain.ErrInvalidFee, s.im.Initialize(mockCtx, admin, -1, feeRecipient, payToken, 1))
}

func (s *marketplaceSuite) TestInitializeEmptyAddress() {
	s.marketplaceRepo.On("Get", mockCtx).Return(nil, domain.ErrNotInitialized).Once()

	s.Equal(domain.ErrInvalidAddress, s.im.Initialize(mockCtx, admin, 250, "", payToken, 1))
}

func (s *marketplaceSuite) TestSetPlatformFee() {
	updated := s.storedConfig()
	updated.PlatformFeeBps = 500

	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()
	s.marketplaceRepo.On("Set", mockCtx, updated).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.SetPlatformFee(mockCtx, admin, 500))
}

func (s *marketplaceSuite) TestSetPlatformFeeUnauthorized() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.SetPlatformFee(mockCtx, stranger, 500))
	s.marketplaceRepo.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetPlatformFeeOutOfRange() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()

	s.Equal(domain.ErrInvalidFee, s.im.SetPlatformFee(mockCtx, admin, marketplace.MaxFeeBps+1))
	s.marketplaceRepo.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetFeeRecipient() {
	updated := s.storedConfig()
	updated.FeeRecipient = stranger

	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()
	s.marketplaceRepo.On("Set", mockCtx, updated).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.SetFeeRecipient(mockCtx, admin, stranger))
}

func (s *marketplaceSuite) TestSetFeeRecipientUnauthorized() {
	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.SetFeeRecipient(mockCtx, stranger, stranger))
}

func (s *marketplaceSuite) TestActivityFailureDoesNotFailOperation() {
	updated := s.storedConfig()
	updated.PlatformFeeBps = 100

	s.marketplaceRepo.On("Get", mockCtx).Return(s.storedConfig(), nil).Once()
	s.marketplaceRepo.On("Set", mockCtx, updated).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(domain.ErrInternalServerError).Once()

	s.NoError(s.im.SetPlatformFee(mockCtx, admin, 100))
}
