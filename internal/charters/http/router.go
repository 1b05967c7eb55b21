package http

import "github.com/gin-gonic/gin"

// Register attaches charter API routes to the given router group.
// Extra handlers (rate limiting) run before creation only.
func (h *Handler) Register(rg *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	rg.POST("", append(createMiddleware, h.create)...)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}
