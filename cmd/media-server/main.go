package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"trailhead/internal/config"
	"trailhead/internal/dbmongo"
	"trailhead/internal/dbmysql"
	"trailhead/internal/hashid"
	"trailhead/internal/media"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatal("mysql connection failed", zap.Error(err))
	}

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer mongoClient.Close(context.Background())

	codec, err := hashid.NewCodec(cfg)
	if err != nil {
		logger.Fatal("hashid codec init failed", zap.Error(err))
	}

	srv := media.NewHTTPServer(db, mongoClient, codec, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MediaServerPort),
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("media server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down media server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("media server stopped")
}
