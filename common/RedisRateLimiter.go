/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package common

import (
	"context"
	"crypto/tls"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../mocks/mock_rate_limiter.go -package=mocks -source=RedisRateLimiter.go
type RateLimiter interface {
	IsRequestAllowed(ctx context.Context) bool
}

// RateLimitConfig caps requests sharing the same Key. A zero limit disables that window.
type RateLimitConfig struct {
	Hour   int
	Minute int
	Key    string
}

type window struct {
	name  string
	limit redis_rate.Limit
}

// windows lists the enabled limits, shortest first so bursts are refused before
// they consume the hourly budget.
func (c RateLimitConfig) windows() []window {
	var windows []window
	if c.Minute > 0 {
		windows = append(windows, window{name: "minute", limit: redis_rate.PerMinute(c.Minute)})
	}

	if c.Hour > 0 {
		windows = append(windows, window{name: "hour", limit: redis_rate.PerHour(c.Hour)})
	}

	return windows
}

// RedisRateLimiter shares its budget between every replica of the service.
type RedisRateLimiter struct {
	config  RateLimitConfig
	limiter *redis_rate.Limiter
}

func NewRateLimiter(url, password string, useTLS bool, config RateLimitConfig) *RedisRateLimiter {
	options := redis.Options{
		Addr:     url,
		Password: password,
		DB:       0, // use default DB
	}

	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return &RedisRateLimiter{config: config, limiter: redis_rate.NewLimiter(redis.NewClient(&options))}
}

// IsRequestAllowed fails closed: a cache error refuses the request.
func (r *RedisRateLimiter) IsRequestAllowed(ctx context.Context) bool {
	for _, w := range r.config.windows() {
		res, err := r.limiter.Allow(ctx, rateLimitKey(w.name, r.config.Key), w.limit)
		if err != nil || res.Allowed == 0 {
			return false
		}
	}

	return true
}

func rateLimitKey(window, key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", window, key)
}
