package client

import (
	"context"
	"fmt"
	"sync"

	"campus/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Singleton pattern Redis client
var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// GetRedisClient returns the shared Redis client, connecting on first use.
func GetRedisClient() *redis.Client {
	redisOnce.Do(func() {
		addr := fmt.Sprintf("%s:%d", config.GetString("redis.host"), config.GetInt("redis.port"))
		logrus.Infof("Connecting to Redis %s", addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.GetString("redis.password"),
			DB:       config.GetInt("redis.db"),
		})

		ctx := context.Background()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
	})
	return redisClient
}
