package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"courseplatform/pkg/authpb"
	"courseplatform/pkg/logger"
	"courseplatform/pkg/rpc"
	"courseplatform/services/auth-service/config"
	"courseplatform/services/auth-service/internal/application/usecase"
	"courseplatform/services/auth-service/internal/infrastructure/cache"
	"courseplatform/services/auth-service/internal/infrastructure/repository"
	"courseplatform/services/auth-service/internal/infrastructure/security"
	grpc_handler "courseplatform/services/auth-service/internal/transport/grpc"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to db", "error", err)
	}
	if err := db.AutoMigrate(&repository.UserGorm{}); err != nil {
		log.Fatal("failed to migrate db", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(db)
	tokenCache := cache.NewTokenCache(rdb)
	hasher := security.NewPasswordHasher(0)
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager, cfg.Admins(), log)
	authServer := grpc_handler.NewAuthServer(authUseCase, log)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen", "port", cfg.GRPCPort, "error", err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.UnaryLogger(log)))
	authpb.RegisterAuthServiceServer(grpcServer, authServer)

	hs := health.NewServer()
	hs.SetServingStatus(authpb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)

	log.Info("auth service is running", "port", cfg.GRPCPort, "admins", len(cfg.Admins()))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("failed to serve", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down server")
	hs.Shutdown()
	grpcServer.GracefulStop()
}
