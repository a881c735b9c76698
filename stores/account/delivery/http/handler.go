package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/delivery"
	"github.com/nuna-market/goapi/domain"
	"github.com/nuna-market/goapi/domain/account"
	"github.com/nuna-market/goapi/middleware"
)

type handler struct {
	activityHistory account.ActivityHistoryUseCase
}

func New(e *echo.Echo, activityHistory account.ActivityHistoryUseCase) {
	h := &handler{activityHistory}

	e.GET("/account/:account/activities", h.getActivities, middleware.IsValidAddress("account"))
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address  domain.Address                `param:"account"`
		Offset   int                           `query:"offset"`
		Limit    int                           `query:"limit"`
		ChainId  *domain.ChainId               `query:"chainId"`
		Contract *domain.Address               `query:"contract"`
		TokenId  *domain.TokenId               `query:"tokenId"`
		Types    []account.ActivityHistoryType `query:"types"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.Limit == 0 {
		p.Limit = 50
	}

	opts := []account.FindActivityHistoryOptions{
		account.ActivityHistoryWithAccount(p.Address),
		account.ActivityHistoryWithPagination(p.Offset, p.Limit),
	}

	if p.ChainId != nil {
		opts = append(opts, account.ActivityHistoryWithChainId(*p.ChainId))
	}

	if p.Contract != nil {
		opts = append(opts, account.ActivityHistoryWithContract(*p.Contract))
	}

	if p.TokenId != nil {
		opts = append(opts, account.ActivityHistoryWithTokenId(*p.TokenId))
	}

	if len(p.Types) > 0 {
		opts = append(opts, account.ActivityHistoryWithTypes(p.Types...))
	}

	if res, err := h.activityHistory.GetActivities(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
