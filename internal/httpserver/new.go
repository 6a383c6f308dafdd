package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/config"
	"github.com/priyanka7rc/laya/pkg/log"
	"github.com/priyanka7rc/laya/pkg/suggest"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	db *sql.DB

	// Optional category suggestion client; nil disables refinement.
	suggester suggest.ISuggest
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Cfg         *config.Config
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	Suggester suggest.ISuggest
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		cfg:         cfg.Cfg,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		suggester:   cfg.Suggester,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
