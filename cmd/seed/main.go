// Command seed populates a persistent store with the default admin account
// and the starter catalog. The in-memory store seeds itself at server start,
// so this tool only accepts the mysql and mongo drivers.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/hanikdev/storefront-golang/internal/config"
	"github.com/hanikdev/storefront-golang/internal/database"
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
	var st store.Store
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		db, err := database.OpenDB(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		s := store.NewMySQL(db)
		if err := s.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		st = s
	case config.DriverMongo:
		s, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		st = s
	default:
		log.Fatalf("STORE_DRIVER=%s has nothing to seed; use mysql or mongo", cfg.StoreDriver)
	}
	defer st.Close(ctx)

	if err := store.Seed(ctx, st); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
