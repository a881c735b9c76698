package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/delivery"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/exchange"
	"github.com/nuna-market/goapi/domain/listing"
	authMiddleware "github.com/nuna-market/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing  listing.UseCase
	exchange exchange.UseCase
}

func New(e *echo.Echo, authMiddleware *authMiddleware.AuthMiddleware, listing listing.UseCase, exchange exchange.UseCase) {
	h := &handler{listing, exchange}

	gs := e.Group("/listings")

	gs.POST("", h.create, authMiddleware.Auth())

	gs.GET("/active", h.getActive)

	g := e.Group("/listing/:listingId")

	g.GET("", h.get)

	g.DELETE("", h.cancel, authMiddleware.Auth())

	g.POST("/buy", h.buy, authMiddleware.Auth())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("address").(domain.Address)

	type params struct {
		ChainId     domain.ChainId `json:"chainId"`
		NftContract domain.Address `json:"nftContract" validate:"required"`
		TokenId     domain.TokenId `json:"tokenId" validate:"required"`
		Price       string         `json:"price" validate:"required"`
		ExpiresAt   *time.Time     `json:"expiresAt"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id, err := h.listing.Create(ctx, p.ChainId, p.NftContract, p.TokenId, seller, p.Price, p.ExpiresAt)
	switch err {
	case nil:
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrNotInitialized, domain.ErrInvalidChainId, domain.ErrInvalidPrice, domain.ErrInvalidExpiry, domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type resp struct {
		ListingId domain.ListingId `json:"listingId"`
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, resp{id})
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.listing.Get(ctx, p.ListingId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getActive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.listing.GetActiveListings(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	switch err := h.listing.Cancel(ctx, p.ListingId, caller); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrListingNotActive:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer := c.Get("address").(domain.Address)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	sale, err := h.exchange.Buy(ctx, p.ListingId, buyer)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, sale)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrCannotBuyOwnListing, domain.ErrListingNotActive, domain.ErrListingExpired, domain.ErrNotInitialized, domain.ErrInsufficientBalance, domain.ErrInvalidFee:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
