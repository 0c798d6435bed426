package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/config"
)

// NewRedisClient создает клиент Redis для кеширования справочных данных.
// Возвращается UniversalClient, чтобы потребители не зависели от конкретного
// режима подключения.
func NewRedisClient(cfg config.RedisConfig) (redis.UniversalClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis configuration error: Addr must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Проверка подключения
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (addr: %s): %w", cfg.Addr, err)
	}

	return client, nil
}
