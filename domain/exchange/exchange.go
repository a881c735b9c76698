package exchange

import (
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
)

// Sale reports how a settled trade's payment was split.
type Sale struct {
	ChainId     domain.ChainId `json:"chainId"`
	NftContract domain.Address `json:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId"`
	Seller      domain.Address `json:"seller"`
	Buyer       domain.Address `json:"buyer"`
	Price       string         `json:"price"`
	// Price scaled by the pay token decimals
	DisplayPrice string `json:"displayPrice"`
	PlatformFee  string `json:"platformFee"`
	Royalty      string `json:"royalty"`
	// net amount received by the seller
	SellerProceeds string `json:"sellerProceeds"`
}

type UseCase interface {
	Buy(ctx ctx.Ctx, listingId domain.ListingId, buyer domain.Address) (*Sale, error)
	AcceptOffer(ctx ctx.Ctx, offerId domain.OfferId, seller domain.Address) (*Sale, error)
}
