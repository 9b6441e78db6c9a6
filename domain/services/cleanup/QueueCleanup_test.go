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
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services/stages"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

const queueURL = "https://sqs.us-east-1.amazonaws.com/000000000000/uploads"

func TestQueueCleanup(t *testing.T) {
	tests := []struct {
		name    string
		request *stages.Cleanup[entities.InspectionRequest]
		deletes int
		err     error
	}{
		{
			name:    "message acknowledged after inspection",
			request: &stages.Cleanup[entities.InspectionRequest]{Request: &entities.InspectionRequest{MessageID: "receipt"}, Error: stages.ErrEnforceCleanup},
			deletes: 1,
		},
		{
			name:    "message acknowledged after panic",
			request: &stages.Cleanup[entities.InspectionRequest]{Request: &entities.InspectionRequest{MessageID: "receipt"}, Error: errors.New("runtime error")},
			deletes: 1,
		},
		{
			name:    "delete failure is only logged",
			request: &stages.Cleanup[entities.InspectionRequest]{Request: &entities.InspectionRequest{MessageID: "receipt"}},
			deletes: 1,
			err:     errors.New("sqs unavailable"),
		},
		{
			name:    "requests without message are ignored",
			request: &stages.Cleanup[entities.InspectionRequest]{Request: &entities.InspectionRequest{}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			mockQueue := mocks.NewMockMessageQueue(mockCtrl)
			mockQueue.EXPECT().DeleteMessage(gomock.Any(), queueURL, gomock.Any()).DoAndReturn(func(_ aws.Context, _ string, message *sqs.Message) error {
				assert.Equal(t, "receipt", *message.ReceiptHandle)
				return tt.err
			}).Times(tt.deletes)

			queueCleanup := NewQueueCleanup(queueURL, mockQueue, logging.NewDiscardLog())
			handler := NewCleanupHandler([]Job{queueCleanup}, logging.NewDiscardLog())

			assert.NoError(t, handler.Handle(context.Background(), tt.request, nil))
			assert.Equal(t, "Cleanup Handler with jobs: QueueCleanup", handler.Name())
		})
	}
}
