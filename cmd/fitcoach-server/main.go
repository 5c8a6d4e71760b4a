package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fitcoach/internal/app"
	"fitcoach/internal/config"
	"fitcoach/internal/database"
	"fitcoach/internal/ingredient"
	"fitcoach/internal/meal"
	"fitcoach/internal/metrics"
	"fitcoach/internal/plan"
	"fitcoach/internal/server"
	"fitcoach/internal/shopping"
	"fitcoach/internal/storage"
)

func main() {
	// 1. Load Configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize the SQLite database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 3. Initialize repositories
	mealRepo := meal.NewRepository(db.SQL)
	ingredientRepo := ingredient.NewRepository(db.SQL)
	planRepo := plan.NewRepository(db.SQL)
	listRepo := shopping.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	exportStore, err := storage.NewExportStore(cfg.ExportStoragePath)
	if err != nil {
		log.Fatalf("Failed to initialize export store: %v", err)
	}

	// 4. Initialize the generation pipeline and application
	generator := shopping.NewGenerator(mealRepo, ingredientRepo)
	application := app.NewApp(cfg, db, mealRepo, ingredientRepo, planRepo, listRepo, generator, metricsStore, exportStore)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.New(application, cfg).Router(),
	}

	go func() {
		log.Printf("FitCoach server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
