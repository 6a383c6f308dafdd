package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	recipeHTTP "github.com/priyanka7rc/laya/internal/recipe/delivery/http"
	recipeSQLite "github.com/priyanka7rc/laya/internal/recipe/repository/sqlite"
	recipeUC "github.com/priyanka7rc/laya/internal/recipe/usecase"
)

// setupRecipeDomain initializes the recipe domain and registers its routes.
func (srv *HTTPServer) setupRecipeDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := recipeSQLite.New(srv.db, srv.l)
	uc := recipeUC.New(repo, srv.l)
	h := recipeHTTP.New(srv.l, uc)

	recipeHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Recipe domain registered")
}
