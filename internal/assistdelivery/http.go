// Package assistdelivery manages delivery layer of search and AI answers.
package assistdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/rs/zerolog"
)

// Searcher provides search service needed by assist delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package assistdelivery
type Searcher interface {
	Search(ctx context.Context, query string) domain.SearchResult
	SetOnline(online bool)
}

// Assistant provides AI service needed by assist delivery layer.
type Assistant interface {
	Ask(ctx context.Context, skill, question string) (domain.Answer, error)
	Skills() []string
}

// Handler facilitates assist delivery layer logic.
type Handler struct {
	searcher  Searcher
	assistant Assistant
}

// NewHandler returns assist handler.
func NewHandler(s Searcher, a Assistant) *Handler {
	return &Handler{searcher: s, assistant: a}
}

type searchRequest struct {
	Query string `form:"query" binding:"required"`
}

// Search handles http search request.
func (h *Handler) Search(gctx *gin.Context) {
	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: h.searcher.Search(gctx.Request.Context(), req.Query)})
}

type modeRequest struct {
	Mode string `uri:"mode" binding:"required,oneof=ONLINE OFFLINE"`
}

type modeData struct {
	Mode string `json:"mode"`
}

// SetMode handles http request to switch search between online and offline.
func (h *Handler) SetMode(gctx *gin.Context) {
	var req modeRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	h.searcher.SetOnline(req.Mode == domain.ModeOnline)

	zerolog.Ctx(gctx.Request.Context()).Info().Str("mode", req.Mode).Msg("search mode changed")

	gctx.JSON(http.StatusOK, web.Response{Data: modeData{Mode: req.Mode}})
}

type askRequest struct {
	Question string `form:"question" binding:"required"`
	Skill    string `form:"skill"`
}

// Ask handles http request to answer a question.
func (h *Handler) Ask(gctx *gin.Context) {
	var req askRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	answer, err := h.assistant.Ask(gctx.Request.Context(), req.Skill, req.Question)
	if err != nil {
		if err == domain.ErrSkillNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: answer})
}

// Skills handles http request to list the AI skill names.
func (h *Handler) Skills(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: h.assistant.Skills()})
}
