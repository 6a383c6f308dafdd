package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Scope(), h.Create)
		tasks.GET("", mw.Scope(), h.List)
		tasks.PATCH("/:id", mw.Scope(), h.Update)
		tasks.DELETE("/:id", mw.Scope(), h.Delete)
	}
}
