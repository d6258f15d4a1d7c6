package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	MLServiceURL string
	UploadDir    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "UTC"),
		DBPath:       get("DB_PATH", "farmtwin.db"),
		// empty means no model service; the mock client takes over
		MLServiceURL: get("ML_SERVICE_URL", ""),
		UploadDir:    get("UPLOAD_DIR", "historical_uploads"),
	}
}
