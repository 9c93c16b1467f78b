package config

import (
	"fmt"
	"os"
)

// Store drivers selectable through STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverMongo  = "mongo"
)

type Config struct {
	Port        string
	StoreDriver string
	MySQLDSN    string
	MongoURI    string
	MongoDB     string
	SeedOnStart bool
}

// Load reads the configuration from the environment. Defaults give a working
// in-memory server on :8080 with the demo catalog seeded.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", DriverMemory),
		MySQLDSN:    getEnv("DB_DSN", "root:secret@tcp(127.0.0.1:3306)/storefront?parseTime=true"),
		MongoURI:    getEnv("MONGO_URL", "mongodb://127.0.0.1:27017"),
		MongoDB:     getEnv("MONGO_DB", "storefront"),
		SeedOnStart: getEnv("SEED_ON_START", "true") == "true",
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverMySQL, DriverMongo:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want memory, mysql, or mongo)", cfg.StoreDriver)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
