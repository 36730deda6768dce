// Package admindelivery manages delivery layer of administration and status.
package admindelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/internal/middleware"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/tokenpkg"
	"github.com/go-petr/super-app/pkg/web"
)

// PluginService provides plugin service needed by admin delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package admindelivery
type PluginService interface {
	Add(ctx context.Context, actor, name string) (domain.PluginOutput, error)
	Run(ctx context.Context, name string) (domain.PluginOutput, error)
	List(ctx context.Context) []string
}

// AuditLister lists recorded audit events.
type AuditLister interface {
	List() []domain.AuditEvent
}

// StatusReporter returns the application status.
type StatusReporter interface {
	Status(ctx context.Context) domain.Status
}

// Handler facilitates admin delivery layer logic.
type Handler struct {
	plugins PluginService
	audit   AuditLister
	status  StatusReporter
}

// NewHandler returns admin handler.
func NewHandler(p PluginService, a AuditLister, s StatusReporter) *Handler {
	return &Handler{plugins: p, audit: a, status: s}
}

type addPluginRequest struct {
	Name string `form:"name" binding:"required"`
}

// AddPlugin handles http request to register a plugin.
func (h *Handler) AddPlugin(gctx *gin.Context) {
	var req addPluginRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	actor := domain.RoleAdmin
	if p, ok := gctx.Get(middleware.AuthPayloadKey); ok {
		if payload, ok := p.(*tokenpkg.Payload); ok {
			actor = payload.Username
		}
	}

	out, err := h.plugins.Add(gctx.Request.Context(), actor, req.Name)
	if err != nil {
		if err == domain.ErrInvalidPluginName {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: out})
}

type runPluginRequest struct {
	Name string `uri:"name" binding:"required"`
}

// RunPlugin handles http request to run a registered plugin.
func (h *Handler) RunPlugin(gctx *gin.Context) {
	var req runPluginRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	out, err := h.plugins.Run(gctx.Request.Context(), req.Name)
	if err != nil {
		if err == domain.ErrPluginNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: out})
}

// ListPlugins handles http request to list plugin names.
func (h *Handler) ListPlugins(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: h.plugins.List(gctx.Request.Context())})
}

// Audit handles http request to list audit events in record order.
func (h *Handler) Audit(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: h.audit.List()})
}

// Status handles http request to get the application status.
func (h *Handler) Status(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: h.status.Status(gctx.Request.Context())})
}
