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

package in

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/domain/services"
	"upload-sentry/domain/services/audit"
	"upload-sentry/logging"
	"upload-sentry/pkg/awsutils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/uber-go/tally/v4"
)

const (
	consumeCount     = "consume_count"
	singleMessageInc = 1
	receiveBackoff   = 5 * time.Second
	objectCreated    = "ObjectCreated:"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_upload_bucket.go -package=mocks -source=QueueController.go
type UploadBucket interface {
	Describe(ctx context.Context, key string) (entities.ScanTarget, error)
	Ownership(ctx context.Context, target entities.ScanTarget) (entities.OwnerRef, entities.UserRef, bool)
}

// QueueController turns S3 upload notifications into inspection requests.
type QueueController struct {
	outputChannel chan *entities.InspectionRequest
	bucket        UploadBucket
	bucketName    string
	registry      out.OwnershipRegistry
	settings      services.SettingsProvider
	recorder      *audit.Recorder

	sqsService awsutils.MessageQueue
	queue      string

	logger       logging.Logger
	metricsScope tally.Scope
}

func NewQueueController(queue, bucketName string, bucket UploadBucket, registry out.OwnershipRegistry, settings services.SettingsProvider, recorder *audit.Recorder,
	outputChannel chan *entities.InspectionRequest, sqsService awsutils.MessageQueue, metricsScope tally.Scope, logger logging.Logger) QueueController {
	return QueueController{queue: queue, bucketName: bucketName, bucket: bucket, registry: registry, settings: settings, recorder: recorder,
		outputChannel: outputChannel, sqsService: sqsService, logger: logger, metricsScope: metricsScope}
}

func (q *QueueController) AsyncScan(ctx context.Context) {
	if q.queue == "" {
		q.logger.Infow("Won't attempt to read SQS queue, because none was configured")
		return
	}

	q.logger.Infow("Start of async queue processing")

	for {
		select {
		case <-ctx.Done():
			q.logger.Infow("End of async queue processing")
			return

		default:
			messages, err := q.sqsService.ReceiveMessages(ctx, q.queue)
			if err != nil && ctx.Err() != nil {
				continue
			}

			if err != nil {
				q.logger.Errorw("failed to obtain upload events", "error", err)
				q.wait(ctx)

				continue
			}

			for _, m := range messages {
				q.handleMessage(ctx, m)
			}
		}
	}
}

func (q *QueueController) wait(ctx context.Context) {
	timer := time.NewTimer(receiveBackoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// handleMessage acknowledges right away any message that carries nothing to inspect. Submitted
// messages are acknowledged by the cleanup stage once their inspection is over. A message with an
// upload that could not be described is left in the queue, so it is delivered again later.
func (q *QueueController) handleMessage(ctx context.Context, m *sqs.Message) {
	events, err := q.extractEvents(ctx, m)
	if err != nil {
		q.logger.Errorw("failed to extract events", "error", err)
		return
	}

	targets := make([]entities.ScanTarget, 0, len(events))
	for _, event := range events {
		target, found, err := q.describe(ctx, event)
		if err != nil {
			q.logger.Errorw("Upload could not be described, leaving message for redelivery", "error", err,
				"bucket", event.S3.Bucket.Name, "key", event.S3.Object.Key, "message_id", aws.StringValue(m.MessageId))
			q.recorder.Error(q.settings.Snapshot(), "Upload could not be inspected, retrying later: %s", event.S3.Object.Key)

			return
		}

		if found {
			targets = append(targets, target)
		}
	}

	submitted := 0
	for _, target := range targets {
		if q.submitForInspection(ctx, target, aws.StringValue(m.ReceiptHandle)) {
			submitted++
		}
	}

	if submitted == 0 && ctx.Err() == nil {
		q.acknowledge(ctx, m)
	}
}

func (q *QueueController) extractEvents(ctx context.Context, m *sqs.Message) ([]adapterentities.S3Event, error) {
	var notification adapterentities.SQSNotification

	err := json.Unmarshal([]byte(aws.StringValue(m.Body)), &notification)
	if err != nil {
		q.logger.Errorw("failed to unmarshal message", "error", err, "message", m)
		q.acknowledge(ctx, m)

		return nil, fmt.Errorf("failed to unmarshal message. %w", err)
	}

	var events adapterentities.Events
	if err = json.Unmarshal([]byte(notification.Message), &events); err != nil {
		// Raw S3 notifications, without the SNS envelope
		err = json.Unmarshal([]byte(aws.StringValue(m.Body)), &events)
	}

	if err != nil {
		q.logger.Errorw("failed to unmarshal events", "error", err, "message field", notification.Message, "message", m)
		q.acknowledge(ctx, m)

		return nil, err
	}

	return events.Record, nil
}

// describe returns found=false for events that carry nothing to inspect. An error means the
// upload exists but could not be described right now.
func (q *QueueController) describe(ctx context.Context, event adapterentities.S3Event) (entities.ScanTarget, bool, error) {
	if !strings.HasPrefix(event.EventName, objectCreated) {
		return entities.ScanTarget{}, false, nil
	}

	if event.S3.Bucket.Name != q.bucketName {
		q.logger.Debugw("Ignoring event from unknown bucket", "bucket", event.S3.Bucket.Name, "key", event.S3.Object.Key)
		return entities.ScanTarget{}, false, nil
	}

	key, err := event.S3.Object.DecodedKey()
	if err != nil {
		q.logger.Errorw("Invalid object key", "error", err, "bucket", event.S3.Bucket.Name, "key", event.S3.Object.Key)
		return entities.ScanTarget{}, false, nil
	}

	q.logger.Debugw("Received new upload", "region", event.AwsRegion, "bucket", event.S3.Bucket.Name, "key", key, "size", event.S3.Object.Size)

	target, err := q.bucket.Describe(ctx, key)
	if errors.Is(err, out.ErrArtifactNotFound) {
		q.logger.Infow("Upload removed before inspection", "bucket", event.S3.Bucket.Name, "key", key)
		return entities.ScanTarget{}, false, nil
	}

	if err != nil {
		return entities.ScanTarget{}, false, fmt.Errorf("failed to describe upload %s. %w", key, err)
	}

	return target, true, nil
}

func (q *QueueController) submitForInspection(ctx context.Context, target entities.ScanTarget, messageID string) bool {
	q.registerOwnership(ctx, target)

	request := &entities.InspectionRequest{Target: target, MessageID: messageID}

	select {
	case q.outputChannel <- request:
	case <-ctx.Done():
		return false
	}

	q.metricsScope.Counter(consumeCount).Inc(singleMessageInc)

	return true
}

func (q *QueueController) registerOwnership(ctx context.Context, target entities.ScanTarget) {
	owner, user, ok := q.bucket.Ownership(ctx, target)
	if !ok {
		return
	}

	if err := q.registry.RegisterOwner(ctx, target, owner); err != nil {
		q.logger.Errorw("failed to register owner", "error", err, "key", target.ID)
	}

	if err := q.registry.RegisterUser(ctx, user); err != nil {
		q.logger.Errorw("failed to register user", "error", err, "user", user.ID)
	}
}

func (q *QueueController) acknowledge(ctx context.Context, m *sqs.Message) {
	if err := q.sqsService.DeleteMessage(ctx, q.queue, m); err != nil {
		q.logger.Errorw("deleting message from sqs service failed", "error", err, "message", m)
	}
}
