package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", mw.Scope(), h.Create)
		recipes.GET("", mw.Scope(), h.List)
		recipes.GET("/:id", mw.Scope(), h.Detail)
		recipes.PUT("/:id", mw.Scope(), h.Update)
		recipes.DELETE("/:id", mw.Scope(), h.Delete)
	}
}
