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
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
)

const settingsKeyFormat = "settings-%s"

// CacheSettingsStore persists runtime settings as plain strings without expiration.
type CacheSettingsStore struct {
	cache  out.Cache
	logger logging.Logger
}

func NewCacheSettingsStore(cache out.Cache, logger logging.Logger) *CacheSettingsStore {
	return &CacheSettingsStore{cache: cache, logger: logger}
}

func (c *CacheSettingsStore) Get(key, defaultValue string) string {
	value, err := c.cache.Get(fmt.Sprintf(settingsKeyFormat, key))
	if errors.Is(err, redis.Nil) {
		return defaultValue
	}

	if err != nil {
		c.logger.Errorw("Failed to read setting, using default value", "error", err, "key", key)
		return defaultValue
	}

	return value
}

func (c *CacheSettingsStore) Set(key, value string) error {
	if err := c.cache.Set(fmt.Sprintf(settingsKeyFormat, key), value, 0); err != nil {
		return fmt.Errorf("failed to save setting %s. %w", key, err)
	}

	return nil
}

func (c *CacheSettingsStore) SetAll(values map[string]string) error {
	prefixed := make(map[string]string, len(values))
	for key, value := range values {
		prefixed[fmt.Sprintf(settingsKeyFormat, key)] = value
	}

	if err := c.cache.SetMany(prefixed); err != nil {
		return fmt.Errorf("failed to save %d settings. %w", len(values), err)
	}

	return nil
}
