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

package scan

import (
	"context"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services"
	"upload-sentry/domain/services/stages"
	"upload-sentry/logging"
)

type Handler struct {
	inspector services.Inspector
	logger    logging.Logger
}

func NewInspectionHandler(inspector services.Inspector, logger logging.Logger) *Handler {
	return &Handler{inspector: inspector, logger: logger}
}

// Handle inspects the uploaded target and forwards the result to the notification stage.
// Every request goes to cleanup afterwards so the queue message is acknowledged exactly once.
func (s *Handler) Handle(ctx context.Context, request *entities.InspectionRequest, w *entities.OutputWriter[entities.InspectionResult]) error {
	result := s.inspector.Inspect(ctx, request.Target)
	result.MessageID = request.MessageID

	s.logger.Debugw("Upload inspected", "id", request.Target.ID, "verdict", result.Verdict.String())
	w.Write(ctx, &result)

	return stages.ErrEnforceCleanup
}

func (s *Handler) Name() string {
	return "Inspection Handler"
}
