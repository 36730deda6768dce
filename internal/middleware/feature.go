package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
)

// RequireFeature aborts with 403 unless the named feature is enabled.
// The flags are read once; the map must not be modified afterwards.
func RequireFeature(features map[string]bool, name string) gin.HandlerFunc {
	enabled := features[name]

	return func(gctx *gin.Context) {
		if !enabled {
			gctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(errorspkg.ErrFeatureDisabled))
			return
		}

		gctx.Next()
	}
}
