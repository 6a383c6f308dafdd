package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	grocery := rg.Group("/grocery")
	{
		grocery.GET("", mw.Scope(), h.List)
		grocery.POST("/regenerate", mw.Scope(), h.Regenerate)
		grocery.PATCH("/items/:id", mw.Scope(), h.SetChecked)
		grocery.DELETE("/items/:id", mw.Scope(), h.DeleteItem)
	}
}
