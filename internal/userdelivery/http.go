// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Register(ctx context.Context, username, password, role string) (domain.Account, error)
	Login(ctx context.Context, username, password string) (domain.Session, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) *Handler {
	return &Handler{service: us}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,alphanum,max=64"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type registerData struct {
	Status  string         `json:"status"`
	Account domain.Account `json:"user"`
}

// Register handles http request to register a user.
func (h *Handler) Register(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req registerRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	account, err := h.service.Register(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		switch err {
		case domain.ErrDuplicateAccount:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidUsername, domain.ErrInvalidRole, domain.ErrPasswordTooLong:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: registerData{
			Status:  "registered",
			Account: account,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginData struct {
	Status               string         `json:"status"`
	AccessToken          string         `json:"access_token"`
	AccessTokenExpiresAt time.Time      `json:"access_token_expires_at"`
	Account              domain.Account `json:"account"`
}

// Login handles http login request and returns the account with an access token.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	session, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: loginData{
			Status:               "login_success",
			AccessToken:          session.AccessToken,
			AccessTokenExpiresAt: session.AccessTokenExpiresAt,
			Account:              session.Account,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
