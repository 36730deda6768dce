// Package insurancedelivery manages delivery layer of insurance plans.
package insurancedelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
)

// Service provides service layer interface needed by insurance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package insurancedelivery
type Service interface {
	Buy(ctx context.Context, username, plan string) (domain.Insurance, error)
	Get(ctx context.Context, username string) (domain.Insurance, error)
}

// Handler facilitates insurance delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns insurance handler.
func NewHandler(is Service) *Handler {
	return &Handler{service: is}
}

type buyRequest struct {
	Username string `uri:"username" binding:"required"`
	Plan     string `uri:"plan" binding:"required"`
}

// Buy handles http request to buy an insurance plan.
func (h *Handler) Buy(gctx *gin.Context) {
	var req buyRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	ins, err := h.service.Buy(gctx.Request.Context(), req.Username, req.Plan)
	if err != nil {
		switch err {
		case domain.ErrInvalidUsername, domain.ErrInvalidPlan:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ins})
}

type getRequest struct {
	Username string `uri:"username" binding:"required"`
}

// Get handles http request to get the insurance plan of a user.
func (h *Handler) Get(gctx *gin.Context) {
	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
		return
	}

	ins, err := h.service.Get(gctx.Request.Context(), req.Username)
	if err != nil {
		if err == domain.ErrInsuranceNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ins})
}
