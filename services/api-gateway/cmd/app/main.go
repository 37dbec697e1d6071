package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courseplatform/pkg/logger"
	"courseplatform/services/api-gateway/internal/client"
	"courseplatform/services/api-gateway/internal/config"
	"courseplatform/services/api-gateway/internal/middleware"
	"courseplatform/services/api-gateway/internal/storage"
	handlers "courseplatform/services/api-gateway/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Redis для rate limit, без него лимиты выключены
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, rate limiting disabled", "addr", cfg.RedisAddr, "error", err)
			rdb = nil
		} else {
			log.Info("connected to redis", "addr", cfg.RedisAddr)
			defer rdb.Close()
		}
	}
	rateLimiter := middleware.NewRateLimiter(rdb)

	// 3. gRPC клиенты
	authClient, err := client.NewAuthClient(cfg.AuthSvcUrl)
	if err != nil {
		log.Fatal("auth service dial failed", "url", cfg.AuthSvcUrl, "error", err)
	}
	defer authClient.Close()

	courseClient, err := client.NewCourseClient(cfg.CourseSvcUrl)
	if err != nil {
		log.Fatal("course service dial failed", "url", cfg.CourseSvcUrl, "error", err)
	}
	defer courseClient.Close()

	// 4. S3 для медиа, опционально
	var media handlers.MediaStore
	if cfg.S3Bucket != "" {
		st, err := storage.NewS3Storage(context.Background(), storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Warn("media storage disabled", "error", err)
		} else {
			media = st
		}
	}

	// 5. Хендлеры и роутер
	router := handlers.NewRouter(handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authClient.Client, handlers.CookieConfig{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}),
		Course:   handlers.NewCourseHandler(courseClient.Client),
		Progress: handlers.NewProgressHandler(courseClient.Client),
		Media:    handlers.NewMediaHandler(media),
	}, authClient.Client, rateLimiter, cfg.Origins(), log)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("api gateway running", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("serve failed", "error", err)
	}
}
