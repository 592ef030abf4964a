package database

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"log"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:    driverConfig.Redis.Password,
		DB:          driverConfig.Redis.DB,
		PoolSize:    driverConfig.Redis.PoolSize,
		DialTimeout: driverConfig.Redis.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), driverConfig.Redis.DialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
