package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/config"
	"smart-todo-backend/pkg/datemath"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/llmprovider"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Infrastructure
	postgresDB *sql.DB
	jwtManager scope.Manager
	llm        *llmprovider.Manager
	calendar   *gcalendar.Client // nil when not configured
	dateParser *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	PostgresDB *sql.DB
	JWTManager scope.Manager
	LLM        *llmprovider.Manager
	Calendar   *gcalendar.Client
	DateParser *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		postgresDB:  cfg.PostgresDB,
		jwtManager:  cfg.JWTManager,
		llm:         cfg.LLM,
		calendar:    cfg.Calendar,
		dateParser:  cfg.DateParser,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
