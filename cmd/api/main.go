package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"angket/adapters/postgres"
	"angket/app"
	"angket/internal"
	"angket/internal/config"
	"angket/ui"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	log := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	service := app.NewAnalyticsService(
		postgres.NewSchemaRepository(db),
		postgres.NewResponseRepository(db),
		cfg.Analytics,
		log,
	)
	httpApp := ui.NewApp(service, log)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpApp.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("analytics API listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed: %v", err)
	}
	log.Info("server stopped")
}
