package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/delivery"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/marketplace"
	authMiddleware "github.com/nuna-market/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

func New(e *echo.Echo, authMiddleware *authMiddleware.AuthMiddleware, marketplace marketplace.UseCase) {
	h := &handler{marketplace}

	g := e.Group("/marketplace")

	g.POST("/initialize", h.initialize, authMiddleware.Auth())

	g.GET("/config", h.getConfig)

	g.PATCH("/fee", h.setPlatformFee, authMiddleware.Auth())

	g.PATCH("/fee-recipient", h.setFeeRecipient, authMiddleware.Auth())
}

func (h *handler) initialize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		PlatformFeeBps int64          `json:"platformFeeBps"`
		FeeRecipient   domain.Address `json:"feeRecipient" validate:"required"`
		PayToken       domain.Address `json:"payToken" validate:"required"`
		ChainId        domain.ChainId `json:"chainId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	// the initializing caller becomes the admin
	switch err := h.marketplace.Initialize(ctx, caller, p.PlatformFeeBps, p.FeeRecipient, p.PayToken, p.ChainId); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
	case domain.ErrAlreadyInitialized:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidFee, domain.ErrInvalidAddress:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	cfg, err := h.marketplace.GetConfig(ctx)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, cfg)
	case domain.ErrNotInitialized:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) setPlatformFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		PlatformFeeBps int64 `json:"platformFeeBps"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	switch err := h.marketplace.SetPlatformFee(ctx, caller, p.PlatformFeeBps); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrInvalidFee, domain.ErrNotInitialized:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) setFeeRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		FeeRecipient domain.Address `json:"feeRecipient" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	switch err := h.marketplace.SetFeeRecipient(ctx, caller, p.FeeRecipient); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrInvalidAddress, domain.ErrNotInitialized:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
