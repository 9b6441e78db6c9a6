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

package awsutils

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v9"
)

const (
	minBackoffTime = 20 * time.Millisecond
	maxBackoffTime = 30 * time.Second
	maxLockRetry   = 10
)

type Elasticache struct {
	ctx    context.Context
	rdb    *redis.Client
	locker *redislock.Client
}

func (e *Elasticache) InitRedis(url, password string, useTLS bool) {
	options := redis.Options{
		Addr:     url,
		Password: password,
		DB:       0, // use default DB
	}

	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	e.ctx = context.Background()
	e.rdb = redis.NewClient(&options)
	e.locker = redislock.New(e.rdb)
}

func (e *Elasticache) GetKey(key string) (string, error) {
	return e.rdb.Get(e.ctx, key).Result()
}

func (e *Elasticache) SetKey(key string, value any, expiration time.Duration) error {
	return e.rdb.Set(e.ctx, key, value, expiration).Err()
}

// SetKeys stores all values with a single MSET, so readers never see a partial update.
func (e *Elasticache) SetKeys(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	pairs := make([]any, 0, 2*len(values))
	for key, value := range values {
		pairs = append(pairs, key, value)
	}

	return e.rdb.MSet(e.ctx, pairs...).Err()
}

func (e *Elasticache) ListKeys(pattern string) ([]string, error) {
	return e.rdb.Keys(e.ctx, pattern).Result()
}

func (e *Elasticache) Lock(key string, duration time.Duration) (*redislock.Lock, error) {
	return e.locker.Obtain(e.ctx, key, duration, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.ExponentialBackoff(minBackoffTime, maxBackoffTime), maxLockRetry),
	})
}

func (e *Elasticache) Unlock(lock *redislock.Lock) error {
	if lock != nil {
		return lock.Release(e.ctx)
	}

	return nil
}

// TryLock fails right away when the lock is held by someone else.
func (e *Elasticache) TryLock(key string, duration time.Duration) (*redislock.Lock, error) {
	return e.locker.Obtain(e.ctx, key, duration, nil)
}

// Push prepends value to the list at key and trims the list to its maxLen most recent values.
func (e *Elasticache) Push(key, value string, maxLen int64) error {
	_, err := e.rdb.TxPipelined(e.ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(e.ctx, key, value)

		if maxLen > 0 {
			pipe.LTrim(e.ctx, key, 0, maxLen-1)
		}

		return nil
	})

	return err
}

func (e *Elasticache) Range(key string, count int64) ([]string, error) {
	return e.rdb.LRange(e.ctx, key, 0, count-1).Result()
}
