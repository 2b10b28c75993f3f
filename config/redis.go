package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis leaves RedisClient nil when redis is not configured or not
// reachable; callers fall back to in-process stores.
func ConnectRedis() {
	var opt *redis.Options
	switch {
	case AppConfig.RedisURL != "":
		parsed, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without redis")
			return
		}
		opt = parsed
	case AppConfig.RedisAddr != "":
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	default:
		log.Println("Redis not configured, running with in-memory stores")
		return
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without redis")
		RedisClient.Close()
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
