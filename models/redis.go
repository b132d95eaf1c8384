package models

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis() {
	redisURL := os.Getenv("REDIS_URL")

	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}

// CacheGet loads a cached JSON value into dest. Returns false on a miss or
// when the cache is down; reads never fail because of the cache.
func CacheGet(ctx context.Context, key string, dest interface{}) bool {
	if RedisClient == nil {
		return false
	}
	raw, err := RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// CacheSet stores a JSON value with a TTL, best effort.
func CacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := RedisClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Println("Cache write failed:", err)
	}
}

// CacheDelete drops keys matching a pattern. Used by the explicit refresh
// action; there is no push-based invalidation.
func CacheDelete(ctx context.Context, pattern string) {
	if RedisClient == nil {
		return
	}
	keys, err := RedisClient.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	RedisClient.Del(ctx, keys...)
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
