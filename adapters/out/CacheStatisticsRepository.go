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
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
)

const (
	statisticsKeyFormat      = "statistics/%s"
	statisticsMonthKeyFormat = "statistics/%s-*"

	maxSleepForRetry = 5
	lockInterval     = 60 * time.Second
	lockKeyFormat    = "lock-%s"
	maxLockAttempts  = 10

	statisticsTTL = 400 * 24 * time.Hour
)

type CacheStatisticsRepository struct {
	cache  out.Cache
	sleep  func(time.Duration)
	logger logging.Logger
}

func NewCacheStatisticsRepository(cache out.Cache, logger logging.Logger) *CacheStatisticsRepository {
	return &CacheStatisticsRepository{cache: cache, sleep: time.Sleep, logger: logger}
}

func (c *CacheStatisticsRepository) Save(stats entities.DetectionStatistics) error {
	key := fmt.Sprintf(statisticsKeyFormat, stats.Date)

	if err := c.lock(key); err != nil {
		return err
	}
	defer c.unlock(key)

	jsonResult, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return c.cache.Set(key, string(jsonResult), statisticsTTL)
}

func (c *CacheStatisticsRepository) GetByDate(day time.Time) (entities.DetectionStatistics, error) {
	date := day.UTC().Format(entities.StatisticsDateFormat)
	return c.get(fmt.Sprintf(statisticsKeyFormat, date), day)
}

func (c *CacheStatisticsRepository) GetByMonth(day time.Time) (map[string]entities.DetectionStatistics, error) {
	results := make(map[string]entities.DetectionStatistics)

	keys, err := c.cache.List(fmt.Sprintf(statisticsMonthKeyFormat, day.UTC().Format("2006-01")))
	if err != nil {
		return nil, fmt.Errorf("error getting keys in redis. %w", err)
	}

	sort.Strings(keys)

	for _, key := range keys {
		date := strings.TrimPrefix(key, "statistics/")

		parsed, err := time.Parse(entities.StatisticsDateFormat, date)
		if err != nil {
			c.logger.Errorw("Ignoring malformed statistics key", "error", err, "key", key)
			continue
		}

		result, err := c.get(key, parsed)
		if err != nil {
			c.logger.Errorw("Failed to obtain value for key", "error", err, "key", key)
			continue
		}

		results[date] = result
	}

	return results, nil
}

func (c *CacheStatisticsRepository) get(key string, day time.Time) (entities.DetectionStatistics, error) {
	jsonResult, err := c.cache.Get(key)
	if errors.Is(err, redis.Nil) {
		return entities.NewDetectionStatistics(day), nil
	}

	if err != nil {
		return entities.NewDetectionStatistics(day), err
	}

	var result entities.DetectionStatistics
	if err := json.Unmarshal([]byte(jsonResult), &result); err != nil {
		return entities.NewDetectionStatistics(day), err
	}

	return result, nil
}

func (c *CacheStatisticsRepository) lock(key string) error {
	lockKey := fmt.Sprintf(lockKeyFormat, key)

	var err error
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		if err = c.cache.Lock(lockKey, lockInterval); err == nil {
			return nil
		}

		c.sleep(time.Duration(common.RandInt(maxSleepForRetry)+1) * time.Second)
	}

	return fmt.Errorf("failed to lock statistics key %s. %w", key, err)
}

func (c *CacheStatisticsRepository) unlock(key string) {
	lockKey := fmt.Sprintf(lockKeyFormat, key)

	if err := c.cache.Unlock(lockKey); err != nil {
		c.logger.Errorw("failed to unlock statistics key", "error", err, "key", key)
	}
}
