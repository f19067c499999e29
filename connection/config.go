package connection

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	Port                string
	DBDSN               string
	FirebaseCredentials string
	FirebaseProjectID   string
	ChecklistStore      string
	JWTSecret           []byte
	CORSAllowOrigins    []string
	DigestCron          string
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found or failed to load")
	}

	cfg := Config{
		Port:                getenv("PORT", "5000"),
		DBDSN:               os.Getenv("DB_DSN"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		FirebaseProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
		ChecklistStore:      getenv("CHECKLIST_STORE", StoreFirestore),
		JWTSecret:           []byte(os.Getenv("JWT_SECRET_KEY")),
		DigestCron:          os.Getenv("COMPLIANCE_DIGEST_CRON"),
	}
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if len(cfg.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if cfg.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	switch cfg.ChecklistStore {
	case StoreMemory:
	case StoreFirestore:
		if cfg.FirebaseCredentials == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS is required when CHECKLIST_STORE=%s", StoreFirestore)
		}
	default:
		return fmt.Errorf("unknown CHECKLIST_STORE %q", cfg.ChecklistStore)
	}
	return nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
