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
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

const auditLogKey = "audit-log"

type auditRecord struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// CacheAuditLog keeps the most recent maxEntries entries in a capped list shared by all instances.
type CacheAuditLog struct {
	cache      out.Cache
	maxEntries int64
	logger     logging.Logger
}

func NewCacheAuditLog(cache out.Cache, maxEntries int64, logger logging.Logger) *CacheAuditLog {
	return &CacheAuditLog{cache: cache, maxEntries: maxEntries, logger: logger}
}

func (c *CacheAuditLog) Append(entry entities.AuditEntry) error {
	record, err := json.Marshal(auditRecord{
		Timestamp: entry.Timestamp.UTC().Format(auditTimeFormat),
		Level:     string(entry.Level),
		Message:   entry.Message,
	})
	if err != nil {
		return err
	}

	if err := c.cache.Push(auditLogKey, string(record), c.maxEntries); err != nil {
		return fmt.Errorf("failed to push audit entry. %w", err)
	}

	return nil
}

func (c *CacheAuditLog) Recent(limit int) ([]entities.AuditEntry, error) {
	values, err := c.cache.Range(auditLogKey, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read audit entries. %w", err)
	}

	entries := make([]entities.AuditEntry, 0, len(values))
	for _, value := range values {
		var record auditRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			c.logger.Warnw("Skipping malformed audit entry", "error", err)
			continue
		}

		timestamp, err := time.ParseInLocation(auditTimeFormat, record.Timestamp, time.UTC)
		if err != nil {
			c.logger.Warnw("Skipping malformed audit entry", "error", err)
			continue
		}

		entries = append(entries, entities.AuditEntry{Timestamp: timestamp, Level: entities.LogLevel(record.Level), Message: record.Message})
	}

	return entries, nil
}
