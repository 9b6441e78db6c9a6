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

package remediation

import (
	"context"
	"errors"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/domain/services/audit"
	"upload-sentry/logging"
)

// Pipeline deletes malicious artifacts and tells their owner. Deletion comes first and a
// notification is only sent for an artifact that was actually removed.
type Pipeline struct {
	store    out.ArtifactStore
	resolver out.OwnershipResolver
	notifier out.Notifier
	recorder *audit.Recorder
	logger   logging.Logger
}

func NewPipeline(store out.ArtifactStore, resolver out.OwnershipResolver, notifier out.Notifier, recorder *audit.Recorder, logger logging.Logger) *Pipeline {
	return &Pipeline{store: store, resolver: resolver, notifier: notifier, recorder: recorder, logger: logger}
}

func (p *Pipeline) Remediate(ctx context.Context, target entities.ScanTarget, verdict entities.Verdict, cfg entities.ScanConfig) entities.RemediationOutcome {
	if !verdict.IsMalicious() {
		return entities.RemediationOutcome{}
	}

	if !cfg.EnableAutoDelete {
		p.recorder.Warning(cfg, "Automatic deletion disabled, keeping malicious file: %s (%s)", target.DisplayName, verdict)
		return entities.RemediationOutcome{}
	}

	p.recorder.Warning(cfg, "Deleting malicious file: %s (ID: %s)", target.DisplayName, target.ID)

	if err := p.store.Delete(ctx, target); err != nil {
		p.logger.Errorw("failed to delete artifact", "error", err, "id", target.ID, "verdict", verdict.String())

		if errors.Is(err, out.ErrArtifactNotFound) {
			p.recorder.Error(cfg, "Failed to delete file: %s. File no longer exists", target.DisplayName)
			return entities.RemediationOutcome{Error: entities.AlreadyDeleted}
		}

		p.recorder.Error(cfg, "Failed to delete file: %s", target.DisplayName)

		return entities.RemediationOutcome{Error: entities.DeleteFailed}
	}

	p.recorder.Warning(cfg, "Malicious file deleted: %s (%s)", target.DisplayName, verdict)
	outcome := entities.RemediationOutcome{Deleted: true}

	if !cfg.EnableNotifications {
		return outcome
	}

	owner, ok := p.resolver.ResolveOwner(ctx, target)
	if !ok {
		p.logger.Debugw("No owner found for artifact, skipping notification", "id", target.ID)
		return outcome
	}

	user, ok := p.resolver.ResolveUser(ctx, owner)
	if !ok {
		p.logger.Debugw("Owner could not be resolved to a user, skipping notification", "id", target.ID, "created_by", owner.CreatedBy)
		return outcome
	}

	if err := p.notifier.Notify(ctx, user, target.DisplayName, owner); err != nil {
		p.logger.Errorw("failed to notify user", "error", err, "user", user.ID, "id", target.ID)
		p.recorder.Error(cfg, "Failed to notify %s about deleted file: %s", user.Username, target.DisplayName)
		outcome.Error = entities.NotifyFailed

		return outcome
	}

	p.recorder.Warning(cfg, "Notification sent to %s for deleted file: %s", user.Username, target.DisplayName)
	outcome.Notified = true

	return outcome
}
