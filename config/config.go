package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	Database        string
	JWTSecret       string
	Port            string
	CORSOrigin      string
	EnableBootstrap bool
}

// Load reads .env if present and then the environment. JWT_SECRET has no
// usable default, so the service refuses to start without it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:        getenv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:        getenv("MONGODB_DATABASE", "resource_management"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Port:            getenv("PORT", "8080"),
		CORSOrigin:      getenv("CORS_ORIGIN", "http://localhost:5173"),
		EnableBootstrap: os.Getenv("ENABLE_BOOTSTRAP") == "true",
	}

	if cfg.JWTSecret == "" {
		log.Fatal("missing required env JWT_SECRET")
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
