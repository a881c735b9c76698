package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/service/chain/mocks"
)

func TestRoyaltyInfo(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	client := &mocks.Client{}
	r := NewRoyalty(client)

	recipient := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "supportsInterface", mock.Anything).
		Return([]interface{}{true}, nil)
	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "royaltyInfo", mock.Anything, mock.Anything).
		Return([]interface{}{recipient, big.NewInt(50000000)}, nil)

	to, amount, err := r.RoyaltyInfo(ctx, 1, "0x00000000000000000000000000000000000000bb", big.NewInt(42), big.NewInt(1000000000))
	req.NoError(err)
	req.Equal(recipient.String(), to)
	req.Equal("50000000", amount.String())
	client.AssertExpectations(t)
}

func TestRoyaltyInfoUnsupported(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	client := &mocks.Client{}
	r := NewRoyalty(client)

	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "supportsInterface", mock.Anything).
		Return([]interface{}{false}, nil)

	to, amount, err := r.RoyaltyInfo(ctx, 1, "0x00000000000000000000000000000000000000bb", big.NewInt(42), big.NewInt(1000000000))
	req.NoError(err)
	req.Equal(domain.EmptyAddress.ToLowerStr(), to)
	req.Zero(amount.Sign())
	client.AssertExpectations(t)
}

func TestRoyaltyInfoInterfaceCheckFailure(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	client := &mocks.Client{}
	r := NewRoyalty(client)

	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "supportsInterface", mock.Anything).
		Return(nil, errors.New("execution reverted"))

	to, amount, err := r.RoyaltyInfo(ctx, 1, "0x00000000000000000000000000000000000000bb", big.NewInt(42), big.NewInt(1000000000))
	req.NoError(err)
	req.Equal(domain.EmptyAddress.ToLowerStr(), to)
	req.Zero(amount.Sign())
	client.AssertExpectations(t)
}

// a collection may report royalty support and still revert on royaltyInfo.
// the sale must go through with a zero royalty.
func TestRoyaltyInfoRevertFallsBackToZero(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	client := &mocks.Client{}
	r := NewRoyalty(client)

	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "supportsInterface", mock.Anything).
		Return([]interface{}{true}, nil)
	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "royaltyInfo", mock.Anything, mock.Anything).
		Return(nil, errors.New("execution reverted"))

	to, amount, err := r.RoyaltyInfo(ctx, 1, "0x00000000000000000000000000000000000000bb", big.NewInt(42), big.NewInt(1000000000))
	req.NoError(err)
	req.Equal(domain.EmptyAddress.ToLowerStr(), to)
	req.Zero(amount.Sign())
	client.AssertExpectations(t)
}

func TestRoyaltyInfoRpcFailureFallsBackToZero(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	client := &mocks.Client{}
	r := NewRoyalty(client)

	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "supportsInterface", mock.Anything).
		Return([]interface{}{true}, nil)
	client.On("Call", mock.Anything, int32(1), mock.Anything, mock.Anything, mock.Anything, "royaltyInfo", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	to, amount, err := r.RoyaltyInfo(ctx, 1, "0x00000000000000000000000000000000000000bb", big.NewInt(42), big.NewInt(1000000000))
	req.NoError(err)
	req.Equal(domain.EmptyAddress.ToLowerStr(), to)
	req.Zero(amount.Sign())
	client.AssertExpectations(t)
}
