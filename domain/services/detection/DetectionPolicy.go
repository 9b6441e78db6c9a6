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

package detection

import (
	"context"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services/audit"
	"upload-sentry/logging"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_detection.go -package=mocks -source=DetectionPolicy.go
type Classifier interface {
	Classify(target entities.ScanTarget, cfg entities.ScanConfig) (entities.Verdict, bool)
}

type ContentScanner interface {
	Scan(ctx context.Context, target entities.ScanTarget, signatures entities.SignatureStore) (entities.Verdict, bool, error)
}

type Policy struct {
	classifier Classifier
	scanner    ContentScanner
	recorder   *audit.Recorder
	logger     logging.Logger
}

func NewDetectionPolicy(classifier Classifier, scanner ContentScanner, recorder *audit.Recorder, logger logging.Logger) *Policy {
	return &Policy{classifier: classifier, scanner: scanner, recorder: recorder, logger: logger}
}

// Evaluate never fails. Read errors are recorded and the target is considered clean, so an
// unreadable file does not block the upload path.
func (p *Policy) Evaluate(ctx context.Context, target entities.ScanTarget, cfg entities.ScanConfig) entities.Verdict {
	if !cfg.EnableScanning {
		return entities.VerdictClean()
	}

	if target.Size > cfg.MaxScanSizeBytes {
		p.recorder.Warning(cfg, "File exceeds max scan size: %s", target.DisplayName)
		return entities.VerdictSkippedTooLarge()
	}

	if verdict, ok := p.classifier.Classify(target, cfg); ok {
		switch verdict.Kind {
		case entities.DangerousExtension:
			p.recorder.Warning(cfg, "Dangerous extension detected: %s", target.DisplayName)
		case entities.DangerousMime:
			p.recorder.Warning(cfg, "Dangerous MIME type detected: %s (%s)", target.DisplayName, target.MimeType)
		}

		return verdict
	}

	verdict, ok, err := p.scanner.Scan(ctx, target, cfg.Signatures)
	if err != nil {
		p.recorder.Error(cfg, "Error scanning file: %s", err)
		return entities.VerdictClean()
	}

	if !ok {
		return entities.VerdictClean()
	}

	p.recorder.Warning(cfg, "Virus signature '%s' detected in: %s", verdict.Reason, target.DisplayName)

	return verdict
}
