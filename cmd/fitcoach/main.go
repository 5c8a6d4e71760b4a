package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fitcoach/internal/app"
	"fitcoach/internal/config"
	"fitcoach/internal/database"
	"fitcoach/internal/ingredient"
	"fitcoach/internal/meal"
	"fitcoach/internal/metrics"
	"fitcoach/internal/plan"
	"fitcoach/internal/shopping"
	"fitcoach/internal/storage"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	mealRepo := meal.NewRepository(db.SQL)
	ingredientRepo := ingredient.NewRepository(db.SQL)
	planRepo := plan.NewRepository(db.SQL)
	listRepo := shopping.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	exportStore, err := storage.NewExportStore(cfg.ExportStoragePath)
	if err != nil {
		log.Fatalf("Failed to initialize export store: %v", err)
	}

	generator := shopping.NewGenerator(mealRepo, ingredientRepo)
	application := app.NewApp(cfg, db, mealRepo, ingredientRepo, planRepo, listRepo, generator, metricsStore, exportStore)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "import":
		importCmd := flag.NewFlagSet("import", flag.ExitOnError)
		file := importCmd.String("file", "", "Path to a catalog JSON file with ingredients and meals")
		importCmd.Parse(os.Args[2:])

		if *file == "" {
			log.Fatal("import requires -file")
		}
		if err := application.ImportCatalog(ctx, *file); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		user := generateCmd.String("user", "", "User ID to generate for")
		week := generateCmd.String("week", "", "Week start date (YYYY-MM-DD, the Monday)")
		planFile := generateCmd.String("plan", "", "Generate from a week plan JSON file instead of a stored plan")
		generateCmd.Parse(os.Args[2:])

		var list *shopping.ShoppingList
		switch {
		case *planFile != "":
			data, err := os.ReadFile(*planFile)
			if err != nil {
				log.Fatalf("Failed to read plan file: %v", err)
			}
			var wp plan.WeekPlan
			if err := json.Unmarshal(data, &wp); err != nil {
				log.Fatalf("Failed to parse plan file: %v", err)
			}
			list = application.GenerateFromPlan(ctx, wp)
		case *user != "" && *week != "":
			list, err = application.GenerateForWeek(ctx, *user, *week)
			if err != nil {
				log.Fatalf("Generation failed: %v", err)
			}
		default:
			log.Fatal("generate requires either -plan, or -user and -week")
		}

		fmt.Print(shopping.FormatText(list))
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metricsStore.Cleanup(*days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: fitcoach <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  import             Load ingredients and meals from a catalog JSON file")
	fmt.Println("  generate           Generate a shopping list for a stored or ad hoc week plan")
	fmt.Println("  metrics-cleanup    Remove old generation metric records")
}
