package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/grocery"
	groceryHTTP "github.com/priyanka7rc/laya/internal/grocery/delivery/http"
	grocerySQLite "github.com/priyanka7rc/laya/internal/grocery/repository/sqlite"
	groceryUC "github.com/priyanka7rc/laya/internal/grocery/usecase"
	"github.com/priyanka7rc/laya/internal/middleware"
)

// setupGroceryDomain initializes the grocery domain and registers its routes.
// The use case is returned so the meal-plan domain can trigger regeneration.
func (srv *HTTPServer) setupGroceryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) grocery.UseCase {
	repo := grocerySQLite.New(srv.db, srv.l)
	uc := groceryUC.New(repo, srv.l)
	h := groceryHTTP.New(srv.l, uc)

	groceryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Grocery domain registered")
	return uc
}
