package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plan := rg.Group("/meal-plan")
	{
		plan.GET("", mw.Scope(), h.ListWeek)
		plan.PUT("/slots", mw.Scope(), h.Upsert)
		plan.DELETE("/slots", mw.Scope(), h.Clear)
	}
}
