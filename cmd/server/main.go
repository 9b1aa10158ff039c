package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fprevidi/Blabbo/config"
	"github.com/fprevidi/Blabbo/internal/api"
	chatModel "github.com/fprevidi/Blabbo/internal/chat/model"
	chatRepository "github.com/fprevidi/Blabbo/internal/chat/repository"
	chatUsecase "github.com/fprevidi/Blabbo/internal/chat/usecase"
	"github.com/fprevidi/Blabbo/internal/realtime"
	userModel "github.com/fprevidi/Blabbo/internal/user/model"
	userRepository "github.com/fprevidi/Blabbo/internal/user/repository"
	userUsecase "github.com/fprevidi/Blabbo/internal/user/usecase"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelInit()

	if err := db.PingContext(initCtx); err != nil {
		appLogger.Errorf("failed to ping database: %v", err)
		os.Exit(1)
	}
	if err := createTables(initCtx, db); err != nil {
		appLogger.Errorf("failed to create tables: %v", err)
		os.Exit(1)
	}
	appLogger.Info("connected to database")

	userRepo := userRepository.NewUserRepository(db, *appLogger)
	chatRepo := chatRepository.NewChatRepository(db, *appLogger)

	userUC := userUsecase.NewUserUsecase(userRepo, cfg, *appLogger)
	chatUC := chatUsecase.NewChatUsecase(chatRepo, *appLogger)

	hub := realtime.NewHub(chatUC, userUC, *appLogger)
	wsServer := realtime.NewServer(hub, cfg, *appLogger)

	handler := api.NewHandler(userUC, chatUC, cfg, *appLogger)

	router := chi.NewRouter()
	router.Mount("/", handler.Routes())
	router.Get("/ws", wsServer.HandleWS)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Errorf("server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}

func createTables(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*userModel.User)(nil),
		(*userModel.DeviceKey)(nil),
		(*chatModel.Chat)(nil),
		(*chatModel.ChatParticipant)(nil),
		(*chatModel.Message)(nil),
		(*chatModel.MessageReceipt)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
