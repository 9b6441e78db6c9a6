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

package notification

import (
	"context"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

type recordingJob struct {
	mutex   sync.Mutex
	results []entities.InspectionResult
}

func (r *recordingJob) Update(result entities.InspectionResult) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.results = append(r.results, result)
}

func (r *recordingJob) UpdateGlobal() {}

func TestObservedInspector(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	target := entities.NewScanTarget("1/a.exe", "a.exe", 10, "")
	result := maliciousResult("a.exe", entities.RemediationOutcome{Deleted: true})
	cfg := entities.ScanConfig{EnableScanning: true}

	mockInspector := mocks.NewMockInspector(mockCtrl)
	mockInspector.EXPECT().Inspect(gomock.Any(), target).Return(result).Times(1)
	mockInspector.EXPECT().InspectWith(gomock.Any(), target, cfg).Return(result).Times(1)

	job := &recordingJob{}
	inspector := NewObservedInspector(mockInspector, job)

	assert.Equal(t, result, inspector.Inspect(context.Background(), target))
	assert.Equal(t, result, inspector.InspectWith(context.Background(), target, cfg))
	assert.Len(t, job.results, 2)
}

func TestHandlerUpdate(t *testing.T) {
	first, second := &recordingJob{}, &recordingJob{}
	handler := NewNotificationHandler([]Job{first, second}, logging.NewDiscardLog())

	handler.Update(maliciousResult("a.exe", entities.RemediationOutcome{}))

	assert.Len(t, first.results, 1)
	assert.Len(t, second.results, 1)
}
