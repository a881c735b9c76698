package usecase_test

import (
	"crypto/ecdsa"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/mocks"
	"github.com/nuna-market/goapi/stores/auth/usecase"
)

const signingTemplate = "Welcome to Nuna Market!\n\nSigning nonce: %s"

func signNonce(t *testing.T, key *ecdsa.PrivateKey, nonce int32) string {
	msg := []byte(fmt.Sprintf(signingTemplate, strconv.Itoa(int(nonce))))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	require.NoError(t, err)
	return hexutil.Encode(sig)
}

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())

	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Get", mock.Anything, address).Return(int32(1234567), nil).Once()
	nonces.On("Del", mock.Anything, address).Return(nil).Once()

	u := usecase.New("jwt-secret", signingTemplate, nonces)
	tkn, err := u.SignToken(ctx, address, signNonce(t, key, 1234567))
	req.NoError(err)
	req.NotEmpty(tkn)

	ads, err := u.ParseToken(ctx, tkn)
	req.NoError(err)
	req.Equal(strings.ToLower(string(address)), ads)
	nonces.AssertExpectations(t)
}

// holding someone else's address must not be enough to get a token for it
func TestSignTokenRejectsForeignSignature(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	victimKey, err := crypto.GenerateKey()
	req.NoError(err)
	victim := domain.Address(crypto.PubkeyToAddress(victimKey.PublicKey).Hex())

	attackerKey, err := crypto.GenerateKey()
	req.NoError(err)

	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Get", mock.Anything, victim).Return(int32(1234567), nil).Once()
	nonces.On("Del", mock.Anything, victim).Return(nil).Once()

	u := usecase.New("jwt-secret", signingTemplate, nonces)
	tkn, err := u.SignToken(ctx, victim, signNonce(t, attackerKey, 1234567))
	req.ErrorIs(err, domain.ErrInvalidSignature)
	req.Empty(tkn)
	nonces.AssertExpectations(t)
}

func TestSignTokenWithoutNonce(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	address := domain.Address("0x00000000000000000000000000000000000000aa")
	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Get", mock.Anything, address).Return(int32(0), domain.ErrNotFound).Once()

	u := usecase.New("jwt-secret", signingTemplate, nonces)
	tkn, err := u.SignToken(ctx, address, "0x1234")
	req.ErrorIs(err, domain.ErrInvalidNonce)
	req.Empty(tkn)
	nonces.AssertExpectations(t)
}

func TestSignTokenGarbageSignature(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	address := domain.Address("0x00000000000000000000000000000000000000aa")
	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Get", mock.Anything, address).Return(int32(1234567), nil).Once()
	nonces.On("Del", mock.Anything, address).Return(nil).Once()

	u := usecase.New("jwt-secret", signingTemplate, nonces)
	_, err := u.SignToken(ctx, address, "not-even-hex")
	req.ErrorIs(err, domain.ErrInvalidSignature)
	nonces.AssertExpectations(t)
}

// replaying a consumed nonce must fail even with a valid signature
func TestSignTokenNonceIsSingleUse(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())

	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Get", mock.Anything, address).Return(int32(1234567), nil).Once()
	nonces.On("Del", mock.Anything, address).Return(nil).Once()
	nonces.On("Get", mock.Anything, address).Return(int32(0), domain.ErrNotFound).Once()

	u := usecase.New("jwt-secret", signingTemplate, nonces)
	sig := signNonce(t, key, 1234567)

	_, err = u.SignToken(ctx, address, sig)
	req.NoError(err)

	_, err = u.SignToken(ctx, address, sig)
	req.ErrorIs(err, domain.ErrInvalidNonce)
	nonces.AssertExpectations(t)
}

func TestGenerateNonce(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	address := domain.Address("0x00000000000000000000000000000000000000aa")
	var stored int32
	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Set", mock.Anything, address, mock.MatchedBy(func(n int32) bool {
		stored = n
		return n >= 0
	})).Return(nil).Once()

	u := usecase.New("jwt-secret", signingTemplate, nonces)
	nonce, err := u.GenerateNonce(ctx, address)
	req.NoError(err)
	req.Equal(stored, nonce)
	nonces.AssertExpectations(t)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingTemplate, &mocks.AuthNonceRepo{})
	_, err := u.ParseToken(ctx, "not-a-token")
	req.Error(err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	req := require.New(t)
	ctx := ctx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())

	nonces := &mocks.AuthNonceRepo{}
	nonces.On("Get", mock.Anything, address).Return(int32(1234567), nil).Once()
	nonces.On("Del", mock.Anything, address).Return(nil).Once()

	signer := usecase.New("jwt-secret", signingTemplate, nonces)
	verifier := usecase.New("other-secret", signingTemplate, &mocks.AuthNonceRepo{})

	tkn, err := signer.SignToken(ctx, address, signNonce(t, key, 1234567))
	req.NoError(err)
	_, err = verifier.ParseToken(ctx, tkn)
	req.Error(err)
}
