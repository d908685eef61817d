package database

import (
	"context"
	"fmt"
	"log"
	"obe_backend/internal/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the cache client. A failure here is not fatal to the
// application; callers degrade to uncached reads.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	// bounded ping so an unreachable host fails fast instead of hanging boot
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
