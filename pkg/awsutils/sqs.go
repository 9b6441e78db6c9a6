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

package awsutils

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

const (
	maxMessagesToFetch = 10
	pollWaitTime       = 20
)

// MessageQueue receives upload events and acknowledges them once handled. Unacknowledged
// messages become visible again after the queue visibility timeout.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_sqs.go -package=mocks -source=sqs.go
type MessageQueue interface {
	ReceiveMessages(ctx aws.Context, queueURL string) ([]*sqs.Message, error)
	DeleteMessage(ctx aws.Context, queueURL string, message *sqs.Message) error
}

type SQS struct {
	svc sqsiface.SQSAPI
}

func (s *SQS) Init(awsSession *session.Session, awsConfig *aws.Config) {
	s.svc = sqs.New(awsSession, awsConfig)
}

// ReceiveMessages long polls the queue. Cancelling ctx interrupts the poll.
func (s *SQS) ReceiveMessages(ctx aws.Context, queueURL string) ([]*sqs.Message, error) {
	result, err := s.svc.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		AttributeNames: []*string{
			aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
			aws.String(sqs.MessageSystemAttributeNameApproximateReceiveCount),
		},
		MessageAttributeNames: []*string{
			aws.String(sqs.QueueAttributeNameAll),
		},
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: aws.Int64(maxMessagesToFetch),
		WaitTimeSeconds:     aws.Int64(pollWaitTime),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages from %s. %w", queueURL, err)
	}

	return result.Messages, nil
}

func (s *SQS) DeleteMessage(ctx aws.Context, queueURL string, message *sqs.Message) error {
	if message == nil || message.ReceiptHandle == nil {
		return fmt.Errorf("message has no receipt handle")
	}

	_, err := s.svc.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message %s. %w", aws.StringValue(message.MessageId), err)
	}

	return nil
}
