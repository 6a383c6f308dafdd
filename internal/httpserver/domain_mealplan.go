package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/grocery"
	mealplanHTTP "github.com/priyanka7rc/laya/internal/mealplan/delivery/http"
	mealplanSQLite "github.com/priyanka7rc/laya/internal/mealplan/repository/sqlite"
	mealplanUC "github.com/priyanka7rc/laya/internal/mealplan/usecase"
	"github.com/priyanka7rc/laya/internal/middleware"
)

// setupMealPlanDomain initializes the meal-plan domain and registers its
// routes. Slot mutations regenerate the affected week's grocery list.
func (srv *HTTPServer) setupMealPlanDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, regenerator grocery.Regenerator) {
	repo := mealplanSQLite.New(srv.db, srv.l)
	uc := mealplanUC.New(repo, regenerator, srv.l)
	h := mealplanHTTP.New(srv.l, uc)

	mealplanHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Meal-plan domain registered")
}
