package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/userdesk/user-api/internal/api"
	"github.com/userdesk/user-api/internal/core/service"
	"github.com/userdesk/user-api/internal/infrastructure/config"
	mongodb "github.com/userdesk/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/userdesk/user-api/internal/infrastructure/db/redis"
	"github.com/userdesk/user-api/internal/infrastructure/hash"
	"github.com/userdesk/user-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        User Management API
// @version      1.0
// @description  CRUD service for user accounts with role assignments.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Core collaborators ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	hasher := hash.NewBcryptHasher(0)
	userService := service.NewUserService(userRepo, roleRepo, hasher, log)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Bootstrap must complete before the server accepts traffic. A missing
	// seeded role aborts startup.
	if !cfg.SkipBootstrap {
		if err := userService.BootstrapDefaults(ctx); err != nil {
			log.Fatal().Err(err).Msg("bootstrap failed")
		}
	}

	e := api.NewRouter(api.RouterDeps{
		UserService: userService,
		Hasher:      hasher,
		Mongo:       db,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
