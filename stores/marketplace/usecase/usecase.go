package usecase

import (
	"time"

	"github.com/google/uuid"
	bCtx "github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/log"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/account"
	"github.com/nuna-market/goapi/domain/marketplace"
)

var timeNow = time.Now

type MarketplaceUseCaseCfg struct {
	Marketplace     marketplace.Repo
	ActivityHistory account.ActivityHistoryRepo
}

type marketplaceUseCase struct {
	marketplace     marketplace.Repo
	activityHistory account.ActivityHistoryRepo
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &marketplaceUseCase{
		marketplace:     cfg.Marketplace,
		activityHistory: cfg.ActivityHistory,
	}
}

func (u *marketplaceUseCase) Initialize(ctx bCtx.Ctx, admin domain.Address, feeBps int64, feeRecipient domain.Address, payToken domain.Address, chainId domain.ChainId) error {
	if _, err := u.marketplace.Get(ctx); err == nil {
		return domain.ErrAlreadyInitialized
	} else if err != domain.ErrNotInitialized {
		return err
	}

	if feeBps < 0 || feeBps > marketplace.MaxFeeBps {
		return domain.ErrInvalidFee
	}
	if admin.IsEmpty() || feeRecipient.IsEmpty() || payToken.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	cfg := &marketplace.Config{
		Admin:          admin.ToLower(),
		PlatformFeeBps: feeBps,
		FeeRecipient:   feeRecipient.ToLower(),
		PayToken:       payToken.ToLower(),
		ChainId:        chainId,
		NextListingId:  1,
		NextOfferId:    1,
	}
	if err := u.marketplace.Set(ctx, cfg); err != nil {
		ctx.WithField("err", err).Error("marketplace.Set failed")
		return err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeInitialized, cfg, admin)
	return nil
}

func (u *marketplaceUseCase) GetConfig(ctx bCtx.Ctx) (*marketplace.Config, error) {
	return u.marketplace.Get(ctx)
}

func (u *marketplaceUseCase) SetPlatformFee(ctx bCtx.Ctx, caller domain.Address, feeBps int64) error {
	cfg, err := u.marketplace.Get(ctx)
	if err != nil {
		return err
	}
	if !caller.Equals(cfg.Admin) {
		return domain.ErrUnauthorized
	}
	if feeBps < 0 || feeBps > marketplace.MaxFeeBps {
		return domain.ErrInvalidFee
	}

	cfg.PlatformFeeBps = feeBps
	if err := u.marketplace.Set(ctx, cfg); err != nil {
		ctx.WithField("err", err).Error("marketplace.Set failed")
		return err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeFeeUpdated, cfg, caller)
	return nil
}

func (u *marketplaceUseCase) SetFeeRecipient(ctx bCtx.Ctx, caller domain.Address, recipient domain.Address) error {
	cfg, err := u.marketplace.Get(ctx)
	if err != nil {
		return err
	}
	if !caller.Equals(cfg.Admin) {
		return domain.ErrUnauthorized
	}
	if recipient.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	cfg.FeeRecipient = recipient.ToLower()
	if err := u.marketplace.Set(ctx, cfg); err != nil {
		ctx.WithField("err", err).Error("marketplace.Set failed")
		return err
	}

	u.emitActivity(ctx, account.ActivityHistoryTypeFeeUpdated, cfg, caller)
	return nil
}

func (u *marketplaceUseCase) emitActivity(ctx bCtx.Ctx, typ account.ActivityHistoryType, cfg *marketplace.Config, actor domain.Address) {
	activity := &account.ActivityHistory{
		ChainId:       cfg.ChainId,
		Type:          typ,
		Account:       actor.ToLower(),
		PaymentToken:  cfg.PayToken,
		Time:          timeNow(),
		Source:        account.SourceNuna,
		SourceEventId: uuid.New().String(),
	}
	if err := u.activityHistory.Insert(ctx, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"type": typ,
		}).Warn("activityHistory.Insert failed")
	}
}
