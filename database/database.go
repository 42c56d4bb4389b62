// Package database opens the storage connections behind the theme preference
// stores.
package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stevenson0/Insta-clone/types"
)

// OpenPostgres connects gorm to postgres and migrates the preference table
func OpenPostgres(databaseURL string) (*gorm.DB, error) {
	pool, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(pool); err != nil {
		return nil, err
	}

	return pool, nil
}

func Migrate(pool *gorm.DB) error {
	if err := pool.AutoMigrate(&types.ThemePreference{}); err != nil {
		return fmt.Errorf("failed to migrate theme preferences: %w", err)
	}
	return nil
}

// OpenRedis parses the url and checks the connection with a ping
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
