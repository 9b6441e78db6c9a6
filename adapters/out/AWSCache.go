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

package out

import (
	"fmt"
	"sync"
	"time"
	"upload-sentry/pkg/awsutils"

	"github.com/bsm/redislock"
)

type AWSCache struct {
	mu          sync.Mutex
	locks       map[string]*redislock.Lock
	elasticache awsutils.Elasticache
}

func NewCache(url, password string, useTLS bool) *AWSCache {
	elasticache := awsutils.Elasticache{}
	elasticache.InitRedis(url, password, useTLS)

	return &AWSCache{
		elasticache: elasticache,
		locks:       make(map[string]*redislock.Lock),
	}
}

func (a *AWSCache) Get(key string) (string, error) {
	return a.elasticache.GetKey(key)
}

func (a *AWSCache) Set(key string, value interface{}, expiration time.Duration) error {
	return a.elasticache.SetKey(key, value, expiration)
}

func (a *AWSCache) SetMany(values map[string]string) error {
	return a.elasticache.SetKeys(values)
}

func (a *AWSCache) List(pattern string) ([]string, error) {
	return a.elasticache.ListKeys(pattern)
}

func (a *AWSCache) Lock(key string, duration time.Duration) error {
	lock, err := a.elasticache.Lock(key, duration)
	if err != nil {
		return err
	}

	a.keep(key, lock)

	return nil
}

func (a *AWSCache) TryLock(key string, duration time.Duration) error {
	lock, err := a.elasticache.TryLock(key, duration)
	if err != nil {
		return err
	}

	a.keep(key, lock)

	return nil
}

func (a *AWSCache) keep(key string, lock *redislock.Lock) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.locks[key] = lock
}

func (a *AWSCache) Unlock(key string) error {
	a.mu.Lock()
	lock, ok := a.locks[key]
	delete(a.locks, key)
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("lock not found. key %s", key)
	}

	return a.elasticache.Unlock(lock)
}

func (a *AWSCache) Push(key, value string, maxLen int64) error {
	return a.elasticache.Push(key, value, maxLen)
}

func (a *AWSCache) Range(key string, count int64) ([]string, error) {
	return a.elasticache.Range(key, count)
}
