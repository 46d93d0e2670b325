package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo-backend/config"
	"smart-todo-backend/config/postgre"
	_ "smart-todo-backend/docs" // Swagger docs
	"smart-todo-backend/internal/httpserver"
	"smart-todo-backend/pkg/datemath"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/llmprovider"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

// @title       Smart Todo API
// @description AI-assisted todo backend with task prioritization, deadline suggestions and context analysis.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	// 4. LLM providers (optional, heuristics cover the rest)
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers available, analysis falls back to heuristics: %v", err)
	}
	llm := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)
	for _, p := range llm.Providers() {
		logger.Infof(ctx, "LLM provider configured: %s (%s)", p.Name(), p.Model())
	}

	// 5. Date parser
	timezone := cfg.Analyzer.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. JWT manager
	jwtManager := scope.NewManager(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)

	// 8. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		PostgresDB:  db,
		JWTManager:  jwtManager,
		LLM:         llm,
		Calendar:    calendarClient,
		DateParser:  dateParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
