package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/nuna-market/goapi/base/abi"
	bCtx "github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/service/chain"
)

type RoyaltyContract interface {
	// RoyaltyInfo resolves the royalty recipient and amount for a sale.
	// Collections that do not expose the royalty interface, or whose
	// royalty calls fail, yield a zero royalty instead of an error.
	RoyaltyInfo(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int, salePrice *big.Int) (string, *big.Int, error)
}

type Royalty struct {
	chainService       chain.Client
	abi                ethabi.ABI
	royaltyInterfaceId [4]byte
}

func NewRoyalty(chainService chain.Client) RoyaltyContract {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("2a55205a"))
	return &Royalty{
		abi:                baseabi.ERC2981RoyaltyABI,
		chainService:       chainService,
		royaltyInterfaceId: interfaceId,
	}
}

func (r *Royalty) RoyaltyInfo(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int, salePrice *big.Int) (string, *big.Int, error) {
	method := "supportsInterface"
	unpacked, err := r.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, r.abi, method, r.royaltyInterfaceId)
	if err != nil {
		// collections without supportsInterface are treated as royalty-free
		ctx.WithField("err", err).Warn("supportsInterface failed, assuming no royalty")
		return domain.EmptyAddress.ToLowerStr(), big.NewInt(0), nil
	}
	if !unpacked[0].(bool) {
		return domain.EmptyAddress.ToLowerStr(), big.NewInt(0), nil
	}

	method = "royaltyInfo"
	unpacked, err = r.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, r.abi, method, tokenId, salePrice)
	if err != nil {
		// collections that advertise the interface but revert on royaltyInfo
		// must not block the sale
		ctx.WithField("err", err).Warn("royaltyInfo failed, assuming no royalty")
		return domain.EmptyAddress.ToLowerStr(), big.NewInt(0), nil
	}
	return unpacked[0].(common.Address).String(), unpacked[1].(*big.Int), nil
}
