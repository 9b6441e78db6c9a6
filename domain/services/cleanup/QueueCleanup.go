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

package cleanup

import (
	"context"
	"errors"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services/stages"
	"upload-sentry/logging"
	"upload-sentry/pkg/awsutils"

	"github.com/aws/aws-sdk-go/service/sqs"
)

// QueueCleanup acknowledges the upload event once its inspection is over, whatever the outcome.
type QueueCleanup struct {
	queue      string
	sqsService awsutils.MessageQueue
	logger     logging.Logger
}

func NewQueueCleanup(queue string, sqsService awsutils.MessageQueue, logger logging.Logger) *QueueCleanup {
	return &QueueCleanup{logger: logger, queue: queue, sqsService: sqsService}
}

func (q *QueueCleanup) Clean(ctx context.Context, request *stages.Cleanup[entities.InspectionRequest]) {
	originalRequest := request.Request
	if originalRequest == nil || originalRequest.MessageID == "" {
		return
	}

	if request.Error != nil && !errors.Is(request.Error, stages.ErrEnforceCleanup) {
		q.logger.Warnw("Inspection ended with error, acknowledging message anyway", "error", request.Error, "id", originalRequest.Target.ID)
	}

	q.logger.Debugw("Deleting message", "message_id", originalRequest.MessageID)
	message := sqs.Message{ReceiptHandle: &originalRequest.MessageID}

	if err := q.sqsService.DeleteMessage(ctx, q.queue, &message); err != nil {
		q.logger.Errorw("failed to delete message from sqs service", "error", err)
	}
}
