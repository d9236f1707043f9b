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

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"trailhead/internal/common"
	"trailhead/internal/dbmysql"
	"trailhead/internal/wire"
)

func main() {
	app, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Logger.Sync()

	if err := dbmysql.Migrate(app.DB); err != nil {
		app.Logger.Fatal("database migration failed", zap.Error(err))
	}
	app.Logger.Info("database migration completed")

	router := setupRouter(app)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.FeedServicePort),
		Handler:        router,
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		app.Logger.Info("feed service starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down feed service")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		app.Logger.Warn("server forced to shutdown", zap.Error(err))
	}

	app.Logger.Info("feed service stopped")
}

// setupRouter configures HTTP routes
func setupRouter(app *wire.Application) *mux.Router {
	router := mux.NewRouter()

	router.Use(common.CORS)
	router.Use(common.RequestLogger(app.Logger))
	router.Use(common.Session([]byte(app.Config.Auth.JWTSecret)))

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api.HandleFunc("/feed", app.Feed.GetFeed).Methods("GET")
	api.HandleFunc("/feed", app.Feed.PostFeed).Methods("POST")
	api.HandleFunc("/search", app.Search.PostSearch).Methods("POST")

	return router
}

// healthCheckHandler provides basic health check
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"trailhead-feed"}`))
}
