package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abalfour/flightbooking/config"
	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, filter domain.SearchFilter) ([]domain.FlightListing, error) {
	data, err := c.client.Get(ctx, searchKey(filter)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightListing
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, filter domain.SearchFilter, flights []domain.FlightListing) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(filter), payload, c.searchTTL).Err()
}

// InvalidateSearch drops every cached search result. Called after a
// reservation changes capacity, since any cached listing may now be
// stale.
func (c *RedisCache) InvalidateSearch(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RedisCache) AcquireHold(ctx context.Context, flightID, customerID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, holdKey(flightID, customerID), "held", ttl).Result()
}

func (c *RedisCache) ReleaseHold(ctx context.Context, flightID, customerID int64) error {
	return c.client.Del(ctx, holdKey(flightID, customerID)).Err()
}

const searchKeyPrefix = "cache:search:"

func searchKey(filter domain.SearchFilter) string {
	return fmt.Sprintf("%sstart=%s|end=%s|dest=%s", searchKeyPrefix, filter.StartDate, filter.EndDate, filter.Destination)
}

func holdKey(flightID, customerID int64) string {
	return fmt.Sprintf("hold:flight:%d:customer:%d", flightID, customerID)
}
