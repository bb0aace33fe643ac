package cache

import (
	"os"
	"sync"

	"smartedu.io/infrastructure/logger"
	"github.com/redis/go-redis/v9"
)

type RedisConnection struct {
	Client *redis.Client
}

var (
	instance *RedisConnection
	once     sync.Once
)

func ConnectToCache() {
	GetInstance()
}

func GetInstance() (*RedisConnection, error) {
	once.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
			PoolSize: 10,
		})
		instance = &RedisConnection{Client: client}
		logger.Info("connected to redis successfully")
	})
	return instance, nil
}
