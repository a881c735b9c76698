package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/nuna-market/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

// AuthNonceRepo holds the single-use signing nonces handed out before token
// issuance. A missing entry means the nonce expired or was consumed.
type AuthNonceRepo interface {
	Get(ctx ctx.Ctx, address Address) (int32, error)
	Set(ctx ctx.Ctx, address Address, nonce int32) error
	Del(ctx ctx.Ctx, address Address) error
}

type AuthUsecase interface {
	// GenerateNonce issues a fresh nonce the caller must sign to prove it
	// controls address.
	GenerateNonce(ctx ctx.Ctx, address Address) (int32, error)
	// SignToken verifies the signed nonce message before minting a token.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
