package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/internal/task"
	taskHTTP "github.com/priyanka7rc/laya/internal/task/delivery/http"
	taskSQLite "github.com/priyanka7rc/laya/internal/task/repository/sqlite"
	taskUC "github.com/priyanka7rc/laya/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
// The use case is returned so the brain-dump domain can persist parsed tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	repo := taskSQLite.New(srv.db, srv.l)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}
