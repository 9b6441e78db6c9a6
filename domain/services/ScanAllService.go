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

package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/domain/services/audit"
	"upload-sentry/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	scanAllLock         = "lock-scan-all"
	scanAllLockDuration = 30 * time.Minute
)

var ErrScanAllInProgress = errors.New("a manual scan is already running")

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_scan_all.go -package=mocks -source=ScanAllService.go
type ScanAller interface {
	ScanAll(ctx context.Context) (entities.ScanReport, error)
}

// ScanAllService inspects every stored artifact. Only one manual scan runs at a time across
// all instances, and the whole batch runs under a single settings snapshot.
type ScanAllService struct {
	store     out.ArtifactStore
	cache     out.Cache
	settings  SettingsProvider
	inspector Inspector
	recorder  *audit.Recorder
	workers   int
	logger    logging.Logger
}

func NewScanAllService(store out.ArtifactStore, cache out.Cache, settings SettingsProvider, inspector Inspector, recorder *audit.Recorder, workers int, logger logging.Logger) *ScanAllService {
	if workers <= 0 {
		workers = 1
	}

	return &ScanAllService{store: store, cache: cache, settings: settings, inspector: inspector, recorder: recorder, workers: workers, logger: logger}
}

func (s *ScanAllService) ScanAll(ctx context.Context) (entities.ScanReport, error) {
	if err := s.cache.TryLock(scanAllLock, scanAllLockDuration); err != nil {
		return entities.ScanReport{}, fmt.Errorf("%w. %v", ErrScanAllInProgress, err)
	}

	defer func() {
		if err := s.cache.Unlock(scanAllLock); err != nil {
			s.logger.Errorw("failed to release manual scan lock", "error", err)
		}
	}()

	report := entities.ScanReport{ID: uuid.New().String(), StartedAt: time.Now()}

	targets, err := s.store.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list artifacts. %w", err)
	}

	cfg := s.settings.Snapshot()
	results := make([]entities.InspectionResult, len(targets))

	s.logger.Infow("Manual scan started", "scan_id", report.ID, "targets", len(targets), "workers", s.workers)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, target := range targets {
		i, target := i, target

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = s.inspector.InspectWith(groupCtx, target, cfg)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return report, fmt.Errorf("manual scan interrupted. %w", err)
	}

	for _, result := range results {
		report.Add(result)
	}

	report.FinishedAt = time.Now()

	s.recorder.Info(cfg, "Manual scan completed: scanned=%d detections=%d removed=%d failures=%d", report.Scanned, report.Malicious, report.Deleted, report.Failed)
	s.logger.Infow("Manual scan finished", "scan_id", report.ID, "scanned", report.Scanned, "malicious", report.Malicious,
		"deleted", report.Deleted, "failed", report.Failed, "duration", report.FinishedAt.Sub(report.StartedAt).String())

	return report, nil
}
