package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	aiHTTP "smart-todo-backend/internal/ai/delivery/http"
	aiRepo "smart-todo-backend/internal/ai/repository/postgre"
	aiUC "smart-todo-backend/internal/ai/usecase"
	"smart-todo-backend/internal/analyzer"
	categoryHTTP "smart-todo-backend/internal/category/delivery/http"
	categoryRepo "smart-todo-backend/internal/category/repository/postgre"
	categoryUC "smart-todo-backend/internal/category/usecase"
	contextHTTP "smart-todo-backend/internal/contextentry/delivery/http"
	contextRepo "smart-todo-backend/internal/contextentry/repository/postgre"
	contextUC "smart-todo-backend/internal/contextentry/usecase"
	"smart-todo-backend/internal/middleware"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
	taskRepo "smart-todo-backend/internal/task/repository/postgre"
	taskUC "smart-todo-backend/internal/task/usecase"
	userHTTP "smart-todo-backend/internal/user/delivery/http"
	userRepo "smart-todo-backend/internal/user/repository/postgre"
	userUC "smart-todo-backend/internal/user/usecase"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.RateLimit())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires repositories, use cases and handlers for every
// domain and mounts them under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Shared across domains
	aiRepository := aiRepo.New(srv.postgresDB, srv.l)
	az := analyzer.New(srv.llm, aiRepository, srv.dateParser, srv.cfg.Analyzer.ConfidenceThreshold, srv.l)

	// Users and authentication
	usersRepository := userRepo.New(srv.postgresDB, srv.l)
	usersUseCase := userUC.New(usersRepository, srv.jwtManager, srv.l)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, usersUseCase), mw)

	// Categories
	categoriesRepository := categoryRepo.New(srv.postgresDB, srv.l)
	categoriesUseCase := categoryUC.New(categoriesRepository, srv.l)
	categoryHTTP.RegisterRoutes(api, categoryHTTP.New(srv.l, categoriesUseCase), mw)

	// Tasks
	tasksRepository := taskRepo.New(srv.postgresDB, srv.l)
	tasksUseCase := taskUC.New(tasksRepository, categoriesRepository, aiRepository, az, srv.l)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasksUseCase), mw)

	// Context capture and insights live under their own /context/api/v1 prefix
	contextAPI := srv.gin.Group("/context/api/v1")
	contextRepository := contextRepo.New(srv.postgresDB, srv.l)
	contextUseCase := contextUC.New(contextRepository, az, srv.calendar, srv.l)
	contextHTTP.RegisterRoutes(contextAPI, contextHTTP.New(srv.l, contextUseCase), mw)

	// AI providers, audit log and preferences
	aiUseCase := aiUC.New(aiRepository, srv.llm, srv.l)
	aiHTTP.RegisterRoutes(api, aiHTTP.New(srv.l, aiUseCase), mw)

	srv.l.Infof(ctx, "All domain routes registered under /api/v1 and /context/api/v1")
	return nil
}
