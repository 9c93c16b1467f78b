package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/hanikdev/storefront-golang/internal/config"
	"github.com/hanikdev/storefront-golang/internal/database"
	"github.com/hanikdev/storefront-golang/internal/handlers"
	"github.com/hanikdev/storefront-golang/internal/routes"
	"github.com/hanikdev/storefront-golang/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer st.Close(ctx)

	if cfg.SeedOnStart {
		if err := store.Seed(ctx, st); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	app := handlers.New(st)
	router := routes.SetupRouter(app, st)

	log.Printf("Starting storefront API server on port %s (%s store)...", cfg.Port, cfg.StoreDriver)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		db, err := database.OpenDB(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		s := store.NewMySQL(db)
		if err := s.InitSchema(ctx); err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMongo:
		return store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return store.NewMemory(), nil
	}
}
