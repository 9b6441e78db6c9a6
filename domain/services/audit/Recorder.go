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

package audit

import (
	"fmt"
	"strings"
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

const (
	DefaultRecentEntries = 100
	MaxRecentEntries     = 100
)

type Tag string

const (
	NoTag        Tag = ""
	TagDeleted   Tag = "deleted"
	TagMalicious Tag = "malicious"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_audit_reader.go -package=mocks -source=Recorder.go
type Reader interface {
	Recent(limit int) ([]entities.AuditEntry, error)
}

// Recorder writes the audit trail. Entries always go to the operational log, and are
// persisted to the sink only when the scan snapshot has logging enabled.
type Recorder struct {
	sink   out.AuditLog
	now    func() time.Time
	logger logging.Logger
}

func NewRecorder(sink out.AuditLog, logger logging.Logger) *Recorder {
	return &Recorder{sink: sink, now: time.Now, logger: logger}
}

func (r *Recorder) Info(cfg entities.ScanConfig, format string, args ...any) {
	r.record(cfg, entities.LevelInfo, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warning(cfg entities.ScanConfig, format string, args ...any) {
	r.record(cfg, entities.LevelWarning, fmt.Sprintf(format, args...))
}

func (r *Recorder) Error(cfg entities.ScanConfig, format string, args ...any) {
	r.record(cfg, entities.LevelError, fmt.Sprintf(format, args...))
}

func (r *Recorder) record(cfg entities.ScanConfig, level entities.LogLevel, message string) {
	switch level {
	case entities.LevelError:
		r.logger.Errorw(message, "audit", cfg.EnableLogging)
	case entities.LevelWarning:
		r.logger.Warnw(message, "audit", cfg.EnableLogging)
	default:
		r.logger.Infow(message, "audit", cfg.EnableLogging)
	}

	if !cfg.EnableLogging || r.sink == nil {
		return
	}

	entry := entities.AuditEntry{Timestamp: r.now().UTC(), Level: level, Message: message}
	if err := r.sink.Append(entry); err != nil {
		r.logger.Errorw("failed to append audit entry", "error", err, "level", level, "message", message)
	}
}

// Recent returns the newest entries first. Limits outside (0, MaxRecentEntries] fall back to the default.
func (r *Recorder) Recent(limit int) ([]entities.AuditEntry, error) {
	if limit <= 0 || limit > MaxRecentEntries {
		limit = DefaultRecentEntries
	}

	if r.sink == nil {
		return []entities.AuditEntry{}, nil
	}

	entries, err := r.sink.Recent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log. %w", err)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// TagOf classifies an entry for the operator view. Deletions take precedence over detections.
func TagOf(entry entities.AuditEntry) Tag {
	switch {
	case strings.Contains(entry.Message, "deleted"):
		return TagDeleted
	case strings.Contains(entry.Message, "malicious"):
		return TagMalicious
	default:
		return NoTag
	}
}
