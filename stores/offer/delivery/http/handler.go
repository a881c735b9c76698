package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/delivery"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/exchange"
	"github.com/nuna-market/goapi/domain/offer"
	authMiddleware "github.com/nuna-market/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	offer    offer.UseCase
	exchange exchange.UseCase
}

func New(e *echo.Echo, authMiddleware *authMiddleware.AuthMiddleware, offer offer.UseCase, exchange exchange.UseCase) {
	h := &handler{offer, exchange}

	e.POST("/offers", h.create, authMiddleware.Auth())

	g := e.Group("/offer/:offerId")

	g.GET("", h.get)

	g.DELETE("", h.cancel, authMiddleware.Auth())

	g.POST("/accept", h.accept, authMiddleware.Auth())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer := c.Get("address").(domain.Address)

	type params struct {
		ChainId     domain.ChainId `json:"chainId"`
		NftContract domain.Address `json:"nftContract" validate:"required"`
		TokenId     domain.TokenId `json:"tokenId" validate:"required"`
		Amount      string         `json:"amount" validate:"required"`
		ExpiresAt   *time.Time     `json:"expiresAt"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id, err := h.offer.Create(ctx, p.ChainId, p.NftContract, p.TokenId, buyer, p.Amount, p.ExpiresAt)
	switch err {
	case nil:
	case domain.ErrNotInitialized, domain.ErrInvalidChainId, domain.ErrInvalidPrice, domain.ErrInvalidExpiry, domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type resp struct {
		OfferId domain.OfferId `json:"offerId"`
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, resp{id})
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		OfferId domain.OfferId `param:"offerId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.offer.Get(ctx, p.OfferId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		OfferId domain.OfferId `param:"offerId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	switch err := h.offer.Cancel(ctx, p.OfferId, caller); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) accept(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("address").(domain.Address)

	type params struct {
		OfferId domain.OfferId `param:"offerId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	sale, err := h.exchange.AcceptOffer(ctx, p.OfferId, seller)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, sale)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrOfferExpired, domain.ErrNotInitialized, domain.ErrInsufficientBalance, domain.ErrInvalidFee:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
