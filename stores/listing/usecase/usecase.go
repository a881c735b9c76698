package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	bCtx "github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/log"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/account"
	"github.com/nuna-market/goapi/domain/listing"
	"github.com/nuna-market/goapi/domain/marketplace"
	"github.com/nuna-market/goapi/service/chain/contract"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	Listing         listing.Repo
	Marketplace     marketplace.Repo
	Erc721          contract.Erc721Contract
	ActivityHistory account.ActivityHistoryRepo
}

type listingUseCase struct {
	listing         listing.Repo
	marketplace     marketplace.Repo
	erc721          contract.Erc721Contract
	activityHistory account.ActivityHistoryRepo
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &listingUseCase{
		listing:         cfg.Listing,
		marketplace:     cfg.Marketplace,
		erc721:          cfg.Erc721,
		activityHistory: cfg.ActivityHistory,
	}
}

func (u *listingUseCase) Create(ctx bCtx.Ctx, chainId domain.ChainId, nftContract domain.Address, tokenId domain.TokenId, seller domain.Address, price string, expiresAt *time.Time) (domain.ListingId, error) {
	cfg, err := u.marketplace.Get(ctx)
	if err != nil {
		return 0, err
	}
	if chainId != cfg.ChainId {
		return 0, domain.ErrInvalidChainId
	}

	pb, ok := new(big.Int).SetString(price, 10)
	if !ok || pb.Sign() <= 0 {
		return 0, domain.ErrInvalidPrice
	}

	now := timeNow()
	if expiresAt != nil && !expiresAt.After(now) {
		return 0, domain.ErrInvalidExpiry
	}

	tid, err := tokenId.ToBig()
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	owner, err := u.erc721.OwnerOf(ctx, int32(chainId), nftContract.ToLowerStr(), tid)
	if err != nil {
		ctx.WithField("err", err).Error("erc721.OwnerOf failed")
		return 0, err
	}
	if !seller.Equals(domain.Address(owner)) {
		return 0, domain.ErrUnauthorized
	}

	id, err := u.marketplace.NextListingId(ctx)
	if err != nil {
		return 0, err
	}

	l := &listing.Listing{
		ListingId:   id,
		ChainId:     chainId,
		NftContract: nftContract,
		TokenId:     tokenId,
		Seller:      seller,
		Price:       pb.String(),
		Status:      listing.StatusActive,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}
	if err := u.listing.Create(ctx, l); err != nil {
		ctx.WithField("err", err).Error("listing.Create failed")
		return 0, err
	}
	if err := u.listing.AddActiveId(ctx, id); err != nil {
		ctx.WithField("err", err).Error("listing.AddActiveId failed")
		return 0, err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeList, l, cfg)
	return id, nil
}

func (u *listingUseCase) Cancel(ctx bCtx.Ctx, id domain.ListingId, caller domain.Address) error {
	l, err := u.listing.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Equals(l.Seller) {
		return domain.ErrUnauthorized
	}
	if l.Status != listing.StatusActive {
		return domain.ErrListingNotActive
	}

	status := listing.StatusCancelled
	if err := u.listing.Update(ctx, id, listing.Patchable{Status: &status}); err != nil {
		ctx.WithField("err", err).Error("listing.Update failed")
		return err
	}
	if err := u.listing.RemoveActiveId(ctx, id); err != nil {
		ctx.WithField("err", err).Error("listing.RemoveActiveId failed")
		return err
	}

	cfg, err := u.marketplace.Get(ctx)
	if err == nil {
		u.emitActivity(ctx, account.ActivityHistoryTypeCancelListing, l, cfg)
	}
	return nil
}

func (u *listingUseCase) Get(ctx bCtx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	return u.listing.FindOne(ctx, id)
}

func (u *listingUseCase) GetActiveListings(ctx bCtx.Ctx) ([]*listing.Listing, error) {
	ids, err := u.listing.ActiveIds(ctx)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	res := []*listing.Listing{}
	for _, id := range ids {
		l, err := u.listing.FindOne(ctx, id)
		if err == domain.ErrListingNotFound {
			// evicted record, index entry is stale
			continue
		} else if err != nil {
			return nil, err
		}
		if l.Status != listing.StatusActive || l.IsExpiredAt(now) {
			continue
		}
		res = append(res, l)
	}
	return res, nil
}

func (u *listingUseCase) emitActivity(ctx bCtx.Ctx, typ account.ActivityHistoryType, l *listing.Listing, cfg *marketplace.Config) {
	id := l.ListingId
	activity := &account.ActivityHistory{
		ChainId:         l.ChainId,
		ContractAddress: l.NftContract,
		TokenId:         l.TokenId,
		Type:            typ,
		Account:         l.Seller,
		ListingId:       &id,
		Price:           l.Price,
		PaymentToken:    cfg.PayToken,
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
