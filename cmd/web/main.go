package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/config"
	"github.com/barberbook/barberbook-web/internal/handlers"
	"github.com/barberbook/barberbook-web/internal/middleware"
	"github.com/barberbook/barberbook-web/internal/routes"
	"github.com/barberbook/barberbook-web/internal/session"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	api := apiclient.New(cfg.BackendURL)
	sessions := session.NewManager(newSessionStore(cfg, logger), session.NewCodec(cfg.SessionSecret), cfg.IsProduction())

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.SetFuncMap(handlers.TemplateFuncs())
	r.LoadHTMLGlob("web/templates/*.html")

	routes.RegisterRoutes(r, api, sessions, logger)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("backend", cfg.BackendURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger
}

// newSessionStore picks Redis when configured, otherwise the
// in-process store that suits local development.
func newSessionStore(cfg *config.Config, logger *zap.Logger) session.Store {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, sessions are in-memory and lost on restart")
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return session.NewRedisStore(client)
}
