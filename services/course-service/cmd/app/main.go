package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"courseplatform/pkg/coursepb"
	"courseplatform/pkg/logger"
	"courseplatform/pkg/rpc"
	"courseplatform/services/course-service/config"
	"courseplatform/services/course-service/internal/application/usecase"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/cache"
	"courseplatform/services/course-service/internal/infrastructure/repository"
	grpc_server "courseplatform/services/course-service/internal/transport/grpc"

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
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}

	// Миграции
	if err := db.AutoMigrate(
		&domain.Course{},
		&domain.CourseSession{},
		&domain.Lesson{},
		&domain.LessonProgress{},
		&domain.CourseEnrollment{},
	); err != nil {
		log.Fatal("migration failed", "error", err)
	}

	var courseCache cache.CourseCache = cache.NopCache{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, catalogue cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			courseCache = cache.NewRedisCourseCache(rdb)
			defer rdb.Close()
		}
	}

	courseRepo := repository.NewCourseRepository(db, courseCache)
	structureRepo := repository.NewStructureRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	if cfg.SeedDemo {
		if err := seedDemo(context.Background(), db, courseRepo, cfg.SeedOwner); err != nil {
			log.Warn("demo seed skipped", "error", err)
		}
	}

	courseUC := usecase.NewCourseUseCase(courseRepo, lessonRepo, enrollmentRepo, log)
	structureUC := usecase.NewStructureUseCase(courseRepo, structureRepo, log)
	progressUC := usecase.NewProgressUseCase(progressRepo, lessonRepo, courseRepo, enrollmentRepo, log)

	courseServer := grpc_server.NewCourseServer(courseUC, structureUC, progressUC, log)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("listen failed", "port", cfg.GRPCPort, "error", err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.UnaryLogger(log)))
	coursepb.RegisterCourseServiceServer(s, courseServer)

	hs := health.NewServer()
	hs.SetServingStatus(coursepb.CourseService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		hs.Shutdown()
		s.GracefulStop()
	}()

	log.Info("course service running", "port", cfg.GRPCPort)
	if err := s.Serve(lis); err != nil {
		log.Fatal("serve failed", "error", err)
	}
}
