package marketplace

import (
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
)

// MaxFeeBps caps the platform fee at 10%
const MaxFeeBps = 1000

// Config is the process-wide marketplace configuration. Presence of the
// stored record is the initialized flag; it is written exactly once by
// Initialize and mutated afterward only through the admin setters.
type Config struct {
	Admin          domain.Address `json:"admin"`
	PlatformFeeBps int64          `json:"platformFeeBps"`
	FeeRecipient   domain.Address `json:"feeRecipient"`
	PayToken       domain.Address `json:"payToken"`
	ChainId        domain.ChainId `json:"chainId"`
	NextListingId  uint64         `json:"nextListingId"`
	NextOfferId    uint64         `json:"nextOfferId"`
}

type Repo interface {
	// Get returns domain.ErrNotInitialized when no config record exists
	Get(ctx ctx.Ctx) (*Config, error)
	Set(ctx ctx.Ctx, cfg *Config) error

	// NextListingId returns the current counter value and stores value+1
	// within the same call, so no id is ever handed out twice.
	NextListingId(ctx ctx.Ctx) (domain.ListingId, error)
	NextOfferId(ctx ctx.Ctx) (domain.OfferId, error)
}

type UseCase interface {
	Initialize(ctx ctx.Ctx, admin domain.Address, feeBps int64, feeRecipient domain.Address, payToken domain.Address, chainId domain.ChainId) error
	GetConfig(ctx ctx.Ctx) (*Config, error)
	SetPlatformFee(ctx ctx.Ctx, caller domain.Address, feeBps int64) error
	SetFeeRecipient(ctx ctx.Ctx, caller domain.Address, recipient domain.Address) error
}
