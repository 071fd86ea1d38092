package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StrategyDynamic = "dynamic"
	StrategyFixed   = "fixed"
)

type Config struct {
	Port        string
	DataPath    string
	FrontendURL string
	// Scoring strategy: "dynamic" (filter-aware weights) or "fixed" (legacy weights)
	ScoringStrategy string
	// Salary gate defaults applied when the client omits the bounds
	DefaultMinSalary int
	DefaultMaxSalary int
	// Maximum number of candidates a recruiter can shortlist
	ShortlistCapacity int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DataPath:          getEnv("DATA_PATH", "data/form-submissions.json"),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		ScoringStrategy:   getEnv("SCORING_STRATEGY", StrategyDynamic),
		DefaultMinSalary:  getEnvInt("DEFAULT_MIN_SALARY", 45000),
		DefaultMaxSalary:  getEnvInt("DEFAULT_MAX_SALARY", 150000),
		ShortlistCapacity: getEnvInt("SHORTLIST_CAPACITY", 5),
	}

	if cfg.ScoringStrategy != StrategyDynamic && cfg.ScoringStrategy != StrategyFixed {
		log.Printf("WARNING: unknown SCORING_STRATEGY %q, falling back to %q", cfg.ScoringStrategy, StrategyDynamic)
		cfg.ScoringStrategy = StrategyDynamic
	}

	if _, err := os.Stat(cfg.DataPath); err != nil {
		log.Printf("WARNING: candidate pool %s is not readable. /candidates will fail until it exists.", cfg.DataPath)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
