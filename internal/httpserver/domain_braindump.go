package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	braindumpHTTP "github.com/priyanka7rc/laya/internal/braindump/delivery/http"
	braindumpUC "github.com/priyanka7rc/laya/internal/braindump/usecase"
	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/internal/task"
)

// setupBrainDumpDomain initializes the brain-dump domain and registers its
// routes. It has no repository of its own: parsed tasks are persisted through
// the task use case.
func (srv *HTTPServer) setupBrainDumpDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUseCase task.UseCase) {
	uc := braindumpUC.New(srv.l, taskUseCase, srv.suggester)
	h := braindumpHTTP.New(srv.l, uc)

	braindumpHTTP.RegisterRoutes(api, h, mw)

	if srv.suggester != nil {
		srv.l.Infof(ctx, "Brain-dump domain registered (category suggestion enabled)")
	} else {
		srv.l.Infof(ctx, "Brain-dump domain registered")
	}
}
