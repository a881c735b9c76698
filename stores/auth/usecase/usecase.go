package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/ethereum"
	"github.com/nuna-market/goapi/domain"
)

const nonceRange = int32(9999999)

var timeNow = time.Now

type impl struct {
	jwtSecret    []byte
	signatureMsg string
	nonces       domain.AuthNonceRepo
}

func New(jwtSecret, signatureMsg string, nonces domain.AuthNonceRepo) domain.AuthUsecase {
	return &impl{
		jwtSecret:    []byte(jwtSecret),
		signatureMsg: signatureMsg,
		nonces:       nonces,
	}
}

func (im *impl) GenerateNonce(ctx ctx.Ctx, address domain.Address) (int32, error) {
	nonce := rand.Int31n(nonceRange)
	if err := im.nonces.Set(ctx, address, nonce); err != nil {
		ctx.WithField("err", err).Error("nonces.Set failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if err := im.validateSignature(ctx, address, signature); err != nil {
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

// validateSignature proves the caller controls address by recovering the
// signer of the nonce message. The nonce is single-use.
func (im *impl) validateSignature(ctx ctx.Ctx, address domain.Address, signature string) error {
	nonce, err := im.nonces.Get(ctx, address)
	if err == domain.ErrNotFound {
		return domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).Error("nonces.Get failed")
		return err
	}

	// consume the nonce whether or not the signature checks out
	defer im.nonces.Del(ctx, address)

	msg := im.makeMessageWithNonce(strconv.Itoa(int(nonce)))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		ctx.WithField("err", err).Error("ethereum.ValidateMsgSignature failed")
		return domain.ErrInvalidSignature
	} else if !isValid {
		return domain.ErrInvalidSignature
	}
	return nil
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
