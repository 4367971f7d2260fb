// Package config reads server settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dental-practice-api/internal/planning"
)

type Config struct {
	DatabaseURL string // empty selects the seed file
	SeedFile    string
	GRPCPort    string
	WebPort     string
	LogLevel    string
	Grid        planning.Grid
	RateRPS     float64
	RateBurst   int
}

// Load reads .env (if present) then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SeedFile:    env("SEED_FILE", "db/seed/cabinet.yaml"),
		GRPCPort:    env("PORT", "50051"),
		WebPort:     env("WEB_PORT", "8080"),
		LogLevel:    env("LOG_LEVEL", "info"),
	}

	slot, err := strconv.Atoi(env("GRID_SLOT_MINUTES", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("GRID_SLOT_MINUTES: %w", err)
	}
	px, err := strconv.ParseFloat(env("GRID_SLOT_PIXELS", "60"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("GRID_SLOT_PIXELS: %w", err)
	}
	c.Grid, err = planning.NewGrid(env("GRID_ANCHOR", "08:00"), env("GRID_END", "18:00"), slot, px)
	if err != nil {
		return Config{}, err
	}

	if c.RateRPS, err = strconv.ParseFloat(env("RATE_RPS", "5"), 64); err != nil || c.RateRPS <= 0 {
		return Config{}, fmt.Errorf("RATE_RPS must be a positive number")
	}
	if c.RateBurst, err = strconv.Atoi(env("RATE_BURST", "10")); err != nil || c.RateBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_BURST must be a positive integer")
	}
	return c, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
