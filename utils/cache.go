package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"gatherly/config"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// PreviewCacheClient is the dedicated client for recurrence preview caching.
	PreviewCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitPreviewCache initializes the Redis client for recurrence preview caching.
func InitPreviewCache() {
	PreviewCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPreviewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := PreviewCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Preview Cache): %v", err)
	}
}

// GetPreviewCacheClient returns the Redis client for recurrence preview caching.
func GetPreviewCacheClient() *redis.Client {
	if PreviewCacheClient == nil {
		InitPreviewCache()
	}
	return PreviewCacheClient
}
