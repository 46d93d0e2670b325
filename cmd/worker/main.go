package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-todo-backend/config"
	"smart-todo-backend/config/postgre"
	aiRepo "smart-todo-backend/internal/ai/repository/postgre"
	"smart-todo-backend/internal/analyzer"
	contextRepo "smart-todo-backend/internal/contextentry/repository/postgre"
	contextUC "smart-todo-backend/internal/contextentry/usecase"
	"smart-todo-backend/pkg/datemath"
	"smart-todo-backend/pkg/llmprovider"
	"smart-todo-backend/pkg/log"
)

// The worker drains pending context entries in the background so interactive
// requests never wait on LLM latency.
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

	logger.Info(ctx, "Starting context processing worker...")

	// 3. PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	// 4. LLM providers (optional)
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers available, analysis falls back to heuristics: %v", err)
	}
	llm := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)

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

	// 6. Context use case (no calendar client, the worker only processes)
	aiRepository := aiRepo.New(db, logger)
	az := analyzer.New(llm, aiRepository, dateParser, cfg.Analyzer.ConfidenceThreshold, logger)
	contextRepository := contextRepo.New(db, logger)
	uc := contextUC.New(contextRepository, az, nil, logger)

	pollInterval := cfg.Worker.PollInterval
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	batchSize := cfg.Worker.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	logger.Infof(ctx, "Polling every %s, batch size %d", pollInterval, batchSize)

	// 7. Poll loop
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Worker stopped gracefully")
			return
		case <-ticker.C:
			processed, err := uc.ProcessPending(ctx, batchSize)
			if err != nil {
				logger.Errorf(ctx, "ProcessPending: %v", err)
				continue
			}
			if processed > 0 {
				logger.Infof(ctx, "Processed %d context entries", processed)
			}
		}
	}
}
