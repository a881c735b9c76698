package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// initialization
	ErrAlreadyInitialized = errors.New("marketplace already initialized")
	ErrNotInitialized     = errors.New("marketplace not initialized")

	// lookup
	ErrListingNotFound = errors.New("listing not found")
	ErrOfferNotFound   = errors.New("offer not found")

	// lifecycle
	ErrListingNotActive = errors.New("listing not active")
	ErrListingExpired   = errors.New("listing expired")
	ErrOfferExpired     = errors.New("offer expired")

	// authorization
	ErrUnauthorized        = errors.New("unauthorized")
	ErrCannotBuyOwnListing = errors.New("cannot buy own listing")

	// validation
	ErrInvalidPrice  = errors.New("invalid price")
	ErrInvalidFee    = errors.New("invalid fee")
	ErrInvalidExpiry = errors.New("invalid expiry")

	// settlement
	ErrTransferFailed      = errors.New("transfer failed")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidNonce     = errors.New("Invalid nonce")
)
