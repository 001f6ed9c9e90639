package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"flyerstudio/internal/config"
	"flyerstudio/internal/handler"
	"flyerstudio/internal/middleware"
	"flyerstudio/internal/repository/postgres"
	"flyerstudio/internal/service/flyer"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Prices serialize as JSON numbers, matching what the flyer editor
	// and rendering pipeline already consume.
	decimal.MarshalJSONWithoutQuotes = true

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create table names and bootstrap schema
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	configRepo := postgres.NewConfigRepository(repoConfig)
	groupRepo := postgres.NewGroupRepository(repoConfig)
	productRepo := postgres.NewProductRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	projectService := flyer.NewProjectService(projectRepo, configRepo, groupRepo, productRepo, txManager, logger)
	catalogService := flyer.NewCatalogService(productRepo, txManager, logger)

	// Create handlers
	projectHandler := handler.NewProjectHandler(projectService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)

	// Catalog routes
	mux.HandleFunc("GET /api/products", catalogHandler.ListProducts)
	mux.HandleFunc("POST /api/products/import", catalogHandler.ImportProducts)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var httpHandler http.Handler = mux
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - outermost so OPTIONS pre-flight requests are handled first
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // Spreadsheet imports run synchronously
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
