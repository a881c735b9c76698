package listing

import (
	"math/big"
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// terminalStatuses have no outgoing transitions
var terminalStatuses = map[Status]bool{
	StatusSold:      true,
	StatusCancelled: true,
	StatusExpired:   true,
}

func (s Status) IsTerminal() bool {
	return terminalStatuses[s]
}

type Listing struct {
	ListingId   domain.ListingId `json:"listingId"`
	ChainId     domain.ChainId   `json:"chainId"`
	NftContract domain.Address   `json:"nftContract"`
	TokenId     domain.TokenId   `json:"tokenId"`
	Seller      domain.Address   `json:"seller"`
	// base-unit integer string, immutable after creation
	Price     string     `json:"price"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (l *Listing) LowerCase() {
	l.NftContract = l.NftContract.ToLower()
	l.Seller = l.Seller.ToLower()
}

func (l *Listing) PriceBig() (*big.Int, error) {
	price, ok := new(big.Int).SetString(l.Price, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return price, nil
}

// IsExpiredAt reports whether the listing's explicit expiry has passed.
// A listing with no expiry never expires this way.
func (l *Listing) IsExpiredAt(t time.Time) bool {
	return l.ExpiresAt != nil && t.After(*l.ExpiresAt)
}

type Patchable struct {
	Status *Status `json:"status,omitempty"`
}

type Repo interface {
	// FindOne returns domain.ErrListingNotFound for records the storage
	// layer no longer holds, whether deleted or silently evicted.
	FindOne(ctx ctx.Ctx, id domain.ListingId) (*Listing, error)
	Create(ctx ctx.Ctx, listing *Listing) error
	Update(ctx ctx.Ctx, id domain.ListingId, patchable Patchable) error

	// active-listing index, kept in sync with every status transition
	ActiveIds(ctx ctx.Ctx) ([]domain.ListingId, error)
	AddActiveId(ctx ctx.Ctx, id domain.ListingId) error
	RemoveActiveId(ctx ctx.Ctx, id domain.ListingId) error
}

type UseCase interface {
	Create(ctx ctx.Ctx, chainId domain.ChainId, nftContract domain.Address, tokenId domain.TokenId, seller domain.Address, price string, expiresAt *time.Time) (domain.ListingId, error)
	Cancel(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) error
	Get(ctx ctx.Ctx, id domain.ListingId) (*Listing, error)
	GetActiveListings(ctx ctx.Ctx) ([]*Listing, error)
}
