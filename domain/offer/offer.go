package offer

import (
	"math/big"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
)

// Offer has no status field. Presence in storage means live; acceptance or
// cancellation deletes the record.
type Offer struct {
	OfferId     domain.OfferId `json:"offerId"`
	ChainId     domain.ChainId `json:"chainId"`
	NftContract domain.Address `json:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId"`
	Buyer       domain.Address `json:"buyer"`
	// base-unit integer string, immutable after creation
	Amount    string     `json:"amount"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (o *Offer) LowerCase() {
	o.NftContract = o.NftContract.ToLower()
	o.Buyer = o.Buyer.ToLower()
}

func (o *Offer) AmountBig() (*big.Int, error) {
	amount, ok := new(big.Int).SetString(o.Amount, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return amount, nil
}

func (o *Offer) IsExpiredAt(t time.Time) bool {
	return o.ExpiresAt != nil && t.After(*o.ExpiresAt)
}

type Repo interface {
	// FindOne returns domain.ErrOfferNotFound for records the storage
	// layer no longer holds, whether deleted or silently evicted.
	FindOne(ctx ctx.Ctx, id domain.OfferId) (*Offer, error)
	Create(ctx ctx.Ctx, offer *Offer) error
	Remove(ctx ctx.Ctx, id domain.OfferId) error
}

type UseCase interface {
	Create(ctx ctx.Ctx, chainId domain.ChainId, nftContract domain.Address, tokenId domain.TokenId, buyer domain.Address, amount string, expiresAt *time.Time) (domain.OfferId, error)
	Cancel(ctx ctx.Ctx, id domain.OfferId, caller domain.Address) error
	Get(ctx ctx.Ctx, id domain.OfferId) (*Offer, error)
}
