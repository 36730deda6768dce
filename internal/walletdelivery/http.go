// Package walletdelivery manages delivery layer of wallets.
package walletdelivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/moneypkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	TopUp(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
	PayBill(ctx context.Context, bill domain.Bill) (decimal.Decimal, error)
	Balance(ctx context.Context, username string) (decimal.Decimal, error)
	BuyInternet(ctx context.Context, username string, gb int) (domain.InternetPackage, error)
	Packages(ctx context.Context, username string) []domain.InternetPackage
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(ws Service) *Handler {
	return &Handler{service: ws}
}

func (h *Handler) renderError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrInsufficientFunds,
		domain.ErrNegativeAmount,
		domain.ErrNonPositiveAmount,
		domain.ErrInvalidTraffic:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type balanceData struct {
	Status   string          `json:"status,omitempty"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

type topUpRequest struct {
	Username string `uri:"username" binding:"required"`
	Amount   string `uri:"amount" binding:"required,amount"`
}

// TopUp handles http request to add money to a wallet.
func (h *Handler) TopUp(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req topUpRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	amount, err := moneypkg.Parse(req.Amount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	balance, err := h.service.TopUp(ctx, req.Username, amount)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: balanceData{Status: "added", Username: req.Username, Balance: balance},
	})
}

type payBillRequest struct {
	Username string      `json:"username" binding:"required"`
	Type     string      `json:"type" binding:"required"`
	Amount   json.Number `json:"amount" binding:"required,amount"`
}

// PayBill handles http request to pay a bill from a wallet.
func (h *Handler) PayBill(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req payBillRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	amount, err := moneypkg.Parse(req.Amount.String())
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	bill := domain.Bill{
		Username: req.Username,
		Type:     req.Type,
		Amount:   amount,
	}

	balance, err := h.service.PayBill(ctx, bill)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: balanceData{Status: "paid", Username: req.Username, Balance: balance},
	})
}

type usernameRequest struct {
	Username string `uri:"username" binding:"required"`
}

// Balance handles http request to get the wallet balance.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req usernameRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	balance, err := h.service.Balance(ctx, req.Username)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: balanceData{Username: req.Username, Balance: balance},
	})
}

type buyInternetRequest struct {
	Username string `uri:"username" binding:"required"`
	GB       int    `uri:"gb" binding:"required,min=1"`
}

type internetData struct {
	Status  string                 `json:"status"`
	Package domain.InternetPackage `json:"package"`
}

// BuyInternet handles http request to buy internet traffic.
func (h *Handler) BuyInternet(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req buyInternetRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	p, err := h.service.BuyInternet(ctx, req.Username, req.GB)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: internetData{Status: "activated", Package: p},
	})
}

// Packages handles http request to list internet packages of a user.
func (h *Handler) Packages(gctx *gin.Context) {
	var req usernameRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: h.service.Packages(gctx.Request.Context(), req.Username),
	})
}
