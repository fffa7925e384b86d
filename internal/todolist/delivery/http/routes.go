package http

import (
	"github.com/gin-gonic/gin"

	"todolist-sync/internal/middleware"
)

// RegisterRoutes registers the lists resource on r.
func RegisterRoutes(r *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	r.Use(mw.RateLimit())

	r.GET("", h.List)
	r.POST("", h.Create)
	r.GET("/:id", h.Detail)
	r.PUT("/:id", h.Replace)
}
