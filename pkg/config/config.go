package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// Restaurant
	RestaurantName string `conf:"default:The Gourmet Restaurant,env:RESTAURANT_NAME"`

	// Table pool
	TableCount    int `conf:"default:5,env:TABLE_COUNT"`
	TableCapacity int `conf:"default:4,env:TABLE_CAPACITY"`

	// Customization: flat surcharge per extra ingredient
	ExtraIngredientCost float64 `conf:"default:1.50,env:EXTRA_INGREDIENT_COST"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Observability
	ServiceName    string `conf:"default:gourmet,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces deployment requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.TableCount <= 0 {
		errs = append(errs, fmt.Sprintf("TABLE_COUNT must be positive (got %d)", cfg.TableCount))
	}

	if cfg.TableCapacity <= 0 {
		errs = append(errs, fmt.Sprintf("TABLE_CAPACITY must be positive (got %d)", cfg.TableCapacity))
	}

	if cfg.ExtraIngredientCost < 0 {
		errs = append(errs, fmt.Sprintf("EXTRA_INGREDIENT_COST must not be negative (got %.2f)", cfg.ExtraIngredientCost))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
