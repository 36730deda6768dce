// Package gamedelivery manages delivery layer of games.
package gamedelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
)

// Service provides service layer interface needed by game delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package gamedelivery
type Service interface {
	Play(ctx context.Context, username, game string) (domain.GameResult, error)
	Games() []string
}

// Handler facilitates game delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns game handler.
func NewHandler(gs Service) *Handler {
	return &Handler{service: gs}
}

type playURI struct {
	Username string `uri:"username" binding:"required"`
}

type playQuery struct {
	Game string `form:"game"`
}

// Play handles http request to play a game.
func (h *Handler) Play(gctx *gin.Context) {
	var uri playURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	var query playQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	res, err := h.service.Play(gctx.Request.Context(), uri.Username, query.Game)
	if err != nil {
		switch err {
		case domain.ErrGameNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidUsername:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: res})
}

// List handles http request to list available games.
func (h *Handler) List(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: h.service.Games()})
}
