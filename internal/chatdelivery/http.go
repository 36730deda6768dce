// Package chatdelivery manages delivery layer of user messages.
package chatdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by chat delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package chatdelivery
type Service interface {
	Send(ctx context.Context, sender, receiver, text string) (domain.Message, error)
	Inbox(ctx context.Context, username string) []domain.Message
}

// Handler facilitates chat delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns chat handler.
func NewHandler(cs Service) *Handler {
	return &Handler{service: cs}
}

type sendRequest struct {
	Sender   string `json:"sender" binding:"required"`
	Receiver string `json:"receiver" binding:"required"`
	Text     string `json:"text" binding:"required,max=4096"`
}

type sendData struct {
	Status  string         `json:"status"`
	Message domain.Message `json:"message"`
}

// Send handles http request to send a message.
func (h *Handler) Send(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req sendRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	msg, err := h.service.Send(ctx, req.Sender, req.Receiver, req.Text)
	if err != nil {
		if err == domain.ErrInvalidMessage {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: sendData{Status: "sent", Message: msg}})
}

type inboxRequest struct {
	Username string `uri:"username" binding:"required"`
}

// Inbox handles http request to list messages received by a user.
func (h *Handler) Inbox(gctx *gin.Context) {
	var req inboxRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: h.service.Inbox(gctx.Request.Context(), req.Username)})
}
