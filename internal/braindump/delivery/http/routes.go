package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	dump := rg.Group("/braindump")
	{
		dump.POST("/parse", mw.Scope(), h.Parse)
		dump.POST("", mw.Scope(), h.Create)
	}
}
