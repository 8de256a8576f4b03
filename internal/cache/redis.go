package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyhop/flightconnect/internal/models"
)

// RedisCache is a FareCache backed by Redis, for deployments that share
// fare data across instances. Expiry is delegated to the key TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, key Key) ([]models.FlightLeg, bool) {
	data, err := c.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		return nil, false
	}

	var legs []models.FlightLeg
	if err := json.Unmarshal(data, &legs); err != nil {
		return nil, false
	}
	if legs == nil {
		legs = []models.FlightLeg{}
	}
	return legs, true
}

func (c *RedisCache) Set(ctx context.Context, key Key, legs []models.FlightLeg) error {
	if legs == nil {
		legs = []models.FlightLeg{}
	}
	data, err := json.Marshal(legs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key.String(), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
