package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/dvukovic/devconnect/internal/config"
	"github.com/dvukovic/devconnect/internal/database"
	postgresrepo "github.com/dvukovic/devconnect/internal/repository/postgres"
	"github.com/dvukovic/devconnect/internal/service"
	"github.com/dvukovic/devconnect/internal/token"
	"github.com/dvukovic/devconnect/internal/transport/http/handlers"
	"github.com/dvukovic/devconnect/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ctx := context.Background()

	// Database
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}
	logger.Info().Msg("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)

	// Services
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)

	// Auth middleware
	auth := middleware.Auth(tokens)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/user", auth(http.HandlerFunc(authHandler.Me)))

	handler := middleware.CORS(middleware.RequestID(middleware.Logging(logger)(mux)))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
