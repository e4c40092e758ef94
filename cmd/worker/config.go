package main

import (
	"log"

	"social-backend/internal/shared/utils"
)

// Config holds the worker-specific configuration.
type Config struct {
	RedisAddr     string
	RedisPassword string
	Concurrency   int
}

func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RedisPassword: utils.GetEnvVariable("REDIS_PASSWORD", ""),
		Concurrency:   10,
	}

	log.Printf("[Config] Redis: %s, Concurrency: %d", cfg.RedisAddr, cfg.Concurrency)

	return cfg
}
