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
	"upload-sentry/domain/entities"
	"upload-sentry/logging"

	"github.com/uber-go/tally/v4"
)

const (
	scannedCount           = "scanned"
	verdictCount           = "verdict"
	deletedCount           = "deleted"
	notifiedCount          = "notified"
	remediationFailedCount = "remediation_failed"
	singleInc              = 1
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_inspection.go -package=mocks -source=InspectionService.go
type SettingsProvider interface {
	Snapshot() entities.ScanConfig
}

type Evaluator interface {
	Evaluate(ctx context.Context, target entities.ScanTarget, cfg entities.ScanConfig) entities.Verdict
}

type Remediator interface {
	Remediate(ctx context.Context, target entities.ScanTarget, verdict entities.Verdict, cfg entities.ScanConfig) entities.RemediationOutcome
}

type Inspector interface {
	Inspect(ctx context.Context, target entities.ScanTarget) entities.InspectionResult
	InspectWith(ctx context.Context, target entities.ScanTarget, cfg entities.ScanConfig) entities.InspectionResult
}

type InspectionService struct {
	settings     SettingsProvider
	policy       Evaluator
	remediation  Remediator
	metricsScope tally.Scope
	logger       logging.Logger
}

func NewInspectionService(settings SettingsProvider, policy Evaluator, remediation Remediator, metricsScope tally.Scope, logger logging.Logger) *InspectionService {
	return &InspectionService{settings: settings, policy: policy, remediation: remediation, metricsScope: metricsScope, logger: logger}
}

// Inspect scans a single target under a fresh settings snapshot.
func (s *InspectionService) Inspect(ctx context.Context, target entities.ScanTarget) entities.InspectionResult {
	return s.InspectWith(ctx, target, s.settings.Snapshot())
}

func (s *InspectionService) InspectWith(ctx context.Context, target entities.ScanTarget, cfg entities.ScanConfig) entities.InspectionResult {
	verdict := s.policy.Evaluate(ctx, target, cfg)
	result := entities.InspectionResult{Target: target, Verdict: verdict}

	s.metricsScope.Counter(scannedCount).Inc(singleInc)
	s.metricsScope.Tagged(map[string]string{"kind": verdict.Kind.String()}).Counter(verdictCount).Inc(singleInc)
	s.logger.Debugw("File evaluated", "id", target.ID, "name", target.DisplayName, "size", target.Size, "verdict", verdict.String())

	if !verdict.IsMalicious() {
		return result
	}

	result.Outcome = s.remediation.Remediate(ctx, target, verdict, cfg)
	result.Remediated = true

	if result.Outcome.Deleted {
		s.metricsScope.Counter(deletedCount).Inc(singleInc)
	}

	if result.Outcome.Notified {
		s.metricsScope.Counter(notifiedCount).Inc(singleInc)
	}

	if result.Outcome.Error != entities.NoError {
		s.metricsScope.Tagged(map[string]string{"error": string(result.Outcome.Error)}).Counter(remediationFailedCount).Inc(singleInc)
	}

	s.logger.Infow("Malicious file handled", "id", target.ID, "name", target.DisplayName, "verdict", verdict.String(),
		"deleted", result.Outcome.Deleted, "notified", result.Outcome.Notified, "error", string(result.Outcome.Error))

	return result
}
