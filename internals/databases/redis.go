package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis menyiapkan client redis untuk cache laporan.
// Redis opsional: kalau REDIS_ADDR kosong, cache dilewati.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR kosong, report cache nonaktif")
		return
	}
	Redis = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	log.Println("✅ Redis client ready:", addr)
}

func RedisHealthy(ctx context.Context) bool {
	if Redis == nil {
		return false
	}
	return Redis.Ping(ctx).Err() == nil
}
