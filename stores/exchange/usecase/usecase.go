package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	bCtx "github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/log"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/account"
	"github.com/nuna-market/goapi/domain/exchange"
	"github.com/nuna-market/goapi/domain/listing"
	"github.com/nuna-market/goapi/domain/marketplace"
	"github.com/nuna-market/goapi/domain/offer"
	"github.com/nuna-market/goapi/service/chain/contract"
	"github.com/shopspring/decimal"
)

var timeNow = time.Now

type ExchangeUseCaseCfg struct {
	Marketplace     marketplace.Repo
	Listing         listing.Repo
	Offer           offer.Repo
	Erc721          contract.Erc721Contract
	Erc20           contract.Erc20Contract
	Royalty         contract.RoyaltyContract
	ActivityHistory account.ActivityHistoryRepo
}

type exchangeUseCase struct {
	marketplace     marketplace.Repo
	listing         listing.Repo
	offer           offer.Repo
	erc721          contract.Erc721Contract
	erc20           contract.Erc20Contract
	royalty         contract.RoyaltyContract
	activityHistory account.ActivityHistoryRepo
}

func New(cfg *ExchangeUseCaseCfg) exchange.UseCase {
	return &exchangeUseCase{
		marketplace:     cfg.Marketplace,
		listing:         cfg.Listing,
		offer:           cfg.Offer,
		erc721:          cfg.Erc721,
		erc20:           cfg.Erc20,
		royalty:         cfg.Royalty,
		activityHistory: cfg.ActivityHistory,
	}
}

func (u *exchangeUseCase) Buy(ctx bCtx.Ctx, listingId domain.ListingId, buyer domain.Address) (*exchange.Sale, error) {
	cfg, err := u.marketplace.Get(ctx)
	if err != nil {
		return nil, err
	}

	l, err := u.listing.FindOne(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if l.Status != listing.StatusActive {
		return nil, domain.ErrListingNotActive
	}
	if l.IsExpiredAt(timeNow()) {
		// lazy expiry: persist the flip before failing
		status := listing.StatusExpired
		if err := u.listing.Update(ctx, listingId, listing.Patchable{Status: &status}); err != nil {
			ctx.WithField("err", err).Error("listing.Update failed")
			return nil, err
		}
		if err := u.listing.RemoveActiveId(ctx, listingId); err != nil {
			ctx.WithField("err", err).Error("listing.RemoveActiveId failed")
			return nil, err
		}
		return nil, domain.ErrListingExpired
	}
	if buyer.Equals(l.Seller) {
		return nil, domain.ErrCannotBuyOwnListing
	}

	price, err := l.PriceBig()
	if err != nil {
		return nil, err
	}

	sale, err := u.settle(ctx, cfg, l.ChainId, l.NftContract, l.TokenId, l.Seller, buyer, price)
	if err != nil {
		return nil, err
	}

	// transfers are done, commit state last
	status := listing.StatusSold
	if err := u.listing.Update(ctx, listingId, listing.Patchable{Status: &status}); err != nil {
		ctx.WithField("err", err).Error("listing.Update failed")
		return nil, err
	}
	if err := u.listing.RemoveActiveId(ctx, listingId); err != nil {
		ctx.WithField("err", err).Error("listing.RemoveActiveId failed")
		return nil, err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeSold, sale, &listingId, nil)
	return sale, nil
}

func (u *exchangeUseCase) AcceptOffer(ctx bCtx.Ctx, offerId domain.OfferId, seller domain.Address) (*exchange.Sale, error) {
	cfg, err := u.marketplace.Get(ctx)
	if err != nil {
		return nil, err
	}

	o, err := u.offer.FindOne(ctx, offerId)
	if err != nil {
		return nil, err
	}
	if o.IsExpiredAt(timeNow()) {
		// lazy expiry: delete the dead record before failing
		if err := u.offer.Remove(ctx, offerId); err != nil {
			ctx.WithField("err", err).Error("offer.Remove failed")
			return nil, err
		}
		return nil, domain.ErrOfferExpired
	}

	tid, err := o.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	owner, err := u.erc721.OwnerOf(ctx, int32(o.ChainId), o.NftContract.ToLowerStr(), tid)
	if err != nil {
		ctx.WithField("err", err).Error("erc721.OwnerOf failed")
		return nil, err
	}
	if !seller.Equals(domain.Address(owner)) {
		return nil, domain.ErrUnauthorized
	}

	amount, err := o.AmountBig()
	if err != nil {
		return nil, err
	}

	sale, err := u.settle(ctx, cfg, o.ChainId, o.NftContract, o.TokenId, seller, o.Buyer, amount)
	if err != nil {
		return nil, err
	}

	if err := u.offer.Remove(ctx, offerId); err != nil {
		ctx.WithField("err", err).Error("offer.Remove failed")
		return nil, err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeAcceptOffer, sale, nil, &offerId)
	return sale, nil
}

// settle moves payment and the nft. It performs every external transfer
// before the caller touches storage, so a failure aborts with nothing
// persisted.
func (u *exchangeUseCase) settle(ctx bCtx.Ctx, cfg *marketplace.Config, chainId domain.ChainId, nftContract domain.Address, tokenId domain.TokenId, seller, buyer domain.Address, price *big.Int) (*exchange.Sale, error) {
	cid := int32(chainId)

	platformFee := new(big.Int).Div(new(big.Int).Mul(price, big.NewInt(cfg.PlatformFeeBps)), domain.Big10000)

	tid, err := tokenId.ToBig()
	if err != nil {
		return nil, err
	}

	royaltyRecipient, royaltyAmount, err := u.royalty.RoyaltyInfo(ctx, cid, nftContract.ToLowerStr(), tid, price)
	if err != nil {
		ctx.WithField("err", err).Error("royalty.RoyaltyInfo failed")
		return nil, err
	}

	proceeds := new(big.Int).Sub(price, platformFee)
	proceeds.Sub(proceeds, royaltyAmount)
	if proceeds.Sign() < 0 {
		ctx.WithFields(log.Fields{
			"price":   price.String(),
			"fee":     platformFee.String(),
			"royalty": royaltyAmount.String(),
		}).Error("royalty exceeds proceeds")
		return nil, domain.ErrInvalidFee
	}

	balance, err := u.erc20.BalanceOf(ctx, cid, cfg.PayToken.ToLowerStr(), buyer.ToLowerStr())
	if err != nil {
		ctx.WithField("err", err).Error("erc20.BalanceOf failed")
		return nil, err
	}
	if balance.Cmp(price) < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	payToken := cfg.PayToken.ToLowerStr()
	if err := u.erc20.TransferFrom(ctx, cid, payToken, buyer.ToLowerStr(), seller.ToLowerStr(), proceeds); err != nil {
		ctx.WithField("err", err).Error("payment to seller failed")
		return nil, domain.ErrTransferFailed
	}
	if platformFee.Sign() > 0 {
		if err := u.erc20.TransferFrom(ctx, cid, payToken, buyer.ToLowerStr(), cfg.FeeRecipient.ToLowerStr(), platformFee); err != nil {
			ctx.WithField("err", err).Error("platform fee transfer failed")
			return nil, domain.ErrTransferFailed
		}
	}
	royaltyTo := domain.Address(royaltyRecipient)
	if royaltyAmount.Sign() > 0 && !royaltyTo.IsEmpty() && !royaltyTo.Equals(domain.EmptyAddress) {
		if err := u.erc20.TransferFrom(ctx, cid, payToken, buyer.ToLowerStr(), royaltyTo.ToLowerStr(), royaltyAmount); err != nil {
			ctx.WithField("err", err).Error("royalty transfer failed")
			return nil, domain.ErrTransferFailed
		}
	}

	if err := u.erc721.TransferFrom(ctx, cid, nftContract.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), tid); err != nil {
		ctx.WithField("err", err).Error("nft transfer failed")
		return nil, domain.ErrTransferFailed
	}

	decimals, err := u.erc20.Decimals(ctx, cid, payToken)
	if err != nil {
		ctx.WithField("err", err).Warn("erc20.Decimals failed, assuming 18")
		decimals = 18
	}

	return &exchange.Sale{
		ChainId:        chainId,
		NftContract:    nftContract.ToLower(),
		TokenId:        tokenId,
		Seller:         seller.ToLower(),
		Buyer:          buyer.ToLower(),
		Price:          price.String(),
		DisplayPrice:   decimal.NewFromBigInt(price, -int32(decimals)).String(),
		PlatformFee:    platformFee.String(),
		Royalty:        royaltyAmount.String(),
		SellerProceeds: proceeds.String(),
	}, nil
}

func (u *exchangeUseCase) emitActivity(ctx bCtx.Ctx, typ account.ActivityHistoryType, sale *exchange.Sale, listingId *domain.ListingId, offerId *domain.OfferId) {
	activity := &account.ActivityHistory{
		ChainId:         sale.ChainId,
		ContractAddress: sale.NftContract,
		TokenId:         sale.TokenId,
		Type:            typ,
		Account:         sale.Seller,
		To:              sale.Buyer,
		ListingId:       listingId,
		OfferId:         offerId,
		Price:           sale.Price,
		PlatformFee:     sale.PlatformFee,
		Royalty:         sale.Royalty,
		Time:            timeNow(),
		Source:          account.SourceNuna,
		SourceEventId:   uuid.New().String(),
	}
	if err := u.activityHistory.Insert(ctx, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"type": typ,
		}).Warn("activityHistory.Insert failed")
	}
}
