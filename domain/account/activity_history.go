package account

import (
	"time"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
)

type ActivityHistoryType string

const (
	// marketplace
	ActivityHistoryTypeInitialized   ActivityHistoryType = "initialized"
	ActivityHistoryTypeList          ActivityHistoryType = "list"
	ActivityHistoryTypeCancelListing ActivityHistoryType = "cancelListing"
	ActivityHistoryTypeSold          ActivityHistoryType = "sold"
	ActivityHistoryTypeCreateOffer   ActivityHistoryType = "createOffer"
	ActivityHistoryTypeAcceptOffer   ActivityHistoryType = "acceptOffer"
	ActivityHistoryTypeCancelOffer   ActivityHistoryType = "cancelOffer"
	ActivityHistoryTypeFeeUpdated    ActivityHistoryType = "feeUpdated"
)

type SourceType string

const (
	SourceNuna SourceType = "nuna"
)

// ActivityHistory is the audit record written for every marketplace
// notification. Writes are fire-and-forget: a failed insert is logged and
// never fails the operation that produced it.
type ActivityHistory struct {
	ChainId         domain.ChainId      `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address      `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId      `json:"tokenId" bson:"tokenId"`
	Type            ActivityHistoryType `json:"type" bson:"type"`
	Account         domain.Address      `json:"account" bson:"account"`
	To              domain.Address      `json:"to" bson:"to"`
	ListingId       *domain.ListingId   `json:"listingId,omitempty" bson:"listingId,omitempty"`
	OfferId         *domain.OfferId     `json:"offerId,omitempty" bson:"offerId,omitempty"`
	Price           string              `json:"price" bson:"price"`
	PlatformFee     string              `json:"platformFee" bson:"platformFee"`
	Royalty         string              `json:"royalty" bson:"royalty"`
	PaymentToken    domain.Address      `json:"paymentToken" bson:"paymentToken"`
	Time            time.Time           `json:"time" bson:"time"`
	Source          SourceType          `json:"source" bson:"source"`
	SourceEventId   string              `json:"sourceEventId" bson:"sourceEventId"`
}

type findActivityHistoryOptions struct {
	Offset   *int
	Limit    *int
	Account  *domain.Address
	ChainId  *domain.ChainId
	Contract *domain.Address
	TokenId  *domain.TokenId
	Types    []ActivityHistoryType
}

type FindActivityHistoryOptions func(*findActivityHistoryOptions) error

func GetFindActivityHistoryOptions(opts ...FindActivityHistoryOptions) (*findActivityHistoryOptions, error) {
	res := &findActivityHistoryOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func ActivityHistoryWithPagination(offset, limit int) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func ActivityHistoryWithAccount(account domain.Address) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Account = account.ToLowerPtr()
		return nil
	}
}

func ActivityHistoryWithChainId(chainId domain.ChainId) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.ChainId = &chainId
		return nil
	}
}

func ActivityHistoryWithContract(contract domain.Address) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Contract = contract.ToLowerPtr()
		return nil
	}
}

func ActivityHistoryWithTokenId(tokenId domain.TokenId) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.TokenId = &tokenId
		return nil
	}
}

func ActivityHistoryWithTypes(types ...ActivityHistoryType) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Types = types
		return nil
	}
}

type ActivityHistoryRepo interface {
	Insert(ctx ctx.Ctx, activity *ActivityHistory) error
	FindActivities(ctx ctx.Ctx, opts ...FindActivityHistoryOptions) ([]*ActivityHistory, error)
	Count(ctx ctx.Ctx, opts ...FindActivityHistoryOptions) (int, error)
}

type ActivitiesResult struct {
	Items []*ActivityHistory `json:"items"`
	Count int                `json:"count"`
}

type ActivityHistoryUseCase interface {
	GetActivities(ctx ctx.Ctx, opts ...FindActivityHistoryOptions) (*ActivitiesResult, error)
}
