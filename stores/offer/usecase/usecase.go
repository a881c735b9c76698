package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	bCtx "github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/log"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/account"
	"github.com/nuna-market/goapi/domain/marketplace"
	"github.com/nuna-market/goapi/domain/offer"
)

var timeNow = time.Now

type OfferUseCaseCfg struct {
	Offer           offer.Repo
	Marketplace     marketplace.Repo
	ActivityHistory account.ActivityHistoryRepo
}

type offerUseCase struct {
	offer           offer.Repo
	marketplace     marketplace.Repo
	activityHistory account.ActivityHistoryRepo
}

func New(cfg *OfferUseCaseCfg) offer.UseCase {
	return &offerUseCase{
		offer:           cfg.Offer,
		marketplace:     cfg.Marketplace,
		activityHistory: cfg.ActivityHistory,
	}
}

func (u *offerUseCase) Create(ctx bCtx.Ctx, chainId domain.ChainId, nftContract domain.Address, tokenId domain.TokenId, buyer domain.Address, amount string, expiresAt *time.Time) (domain.OfferId, error) {
	cfg, err := u.marketplace.Get(ctx)
	if err != nil {
		return 0, err
	}
	if chainId != cfg.ChainId {
		return 0, domain.ErrInvalidChainId
	}

	ab, ok := new(big.Int).SetString(amount, 10)
	if !ok || ab.Sign() <= 0 {
		return 0, domain.ErrInvalidPrice
	}

	now := timeNow()
	if expiresAt != nil && !expiresAt.After(now) {
		return 0, domain.ErrInvalidExpiry
	}

	if _, err := tokenId.ToBig(); err != nil {
		return 0, domain.ErrBadParamInput
	}

	id, err := u.marketplace.NextOfferId(ctx)
	if err != nil {
		return 0, err
	}

	o := &offer.Offer{
		OfferId:     id,
		ChainId:     chainId,
		NftContract: nftContract,
		TokenId:     tokenId,
		Buyer:       buyer,
		Amount:      ab.String(),
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}
	if err := u.offer.Create(ctx, o); err != nil {
		ctx.WithField("err", err).Error("offer.Create failed")
		return 0, err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeCreateOffer, o, cfg)
	return id, nil
}

func (u *offerUseCase) Cancel(ctx bCtx.Ctx, id domain.OfferId, caller domain.Address) error {
	o, err := u.offer.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Equals(o.Buyer) {
		return domain.ErrUnauthorized
	}

	if err := u.offer.Remove(ctx, id); err != nil {
		ctx.WithField("err", err).Error("offer.Remove failed")
		return err
	}

	cfg, err := u.marketplace.Get(ctx)
	if err == nil {
		u.emitActivity(ctx, account.ActivityHistoryTypeCancelOffer, o, cfg)
	}
	return nil
}

func (u *offerUseCase) Get(ctx bCtx.Ctx, id domain.OfferId) (*offer.Offer, error) {
	return u.offer.FindOne(ctx, id)
}

func (u *offerUseCase) emitActivity(ctx bCtx.Ctx, typ account.ActivityHistoryType, o *offer.Offer, cfg *marketplace.Config) {
	id := o.OfferId
	activity := &account.ActivityHistory{
		ChainId:         o.ChainId,
		ContractAddress: o.NftContract,
		TokenId:         o.TokenId,
		Type:            typ,
		Account:         o.Buyer,
		OfferId:         &id,
		Price:           o.Amount,
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
