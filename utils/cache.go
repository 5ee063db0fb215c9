package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/joaquinperez028/landingPageNahuel-sub003/config"
)

// CacheClient is the Redis client backing the availability cache.
var CacheClient *redis.Client

// InitRedis initializes the Redis availability cache client.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the availability cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
