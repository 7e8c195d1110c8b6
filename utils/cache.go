// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"homeserve/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared Redis client backing the record store.
var CacheClient *redis.Client

// InitRedis initializes the Redis client and verifies connectivity.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// GetCacheClient returns the shared Redis client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
