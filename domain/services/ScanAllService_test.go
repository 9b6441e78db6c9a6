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
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services/audit"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

func TestScanAll(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	targets := []entities.ScanTarget{
		entities.NewScanTarget("1/a.txt", "a.txt", 10, "text/plain"),
		entities.NewScanTarget("2/b.exe", "b.exe", 10, ""),
		entities.NewScanTarget("3/c.iso", "c.iso", 1 << 30, ""),
		entities.NewScanTarget("4/d.js", "d.js", 10, ""),
	}
	cfg := entities.NewScanConfig([]string{"exe", "js"}, nil, 1024, entities.SignatureStore{}, entities.ScanSwitches{EnableScanning: true, EnableAutoDelete: true})

	results := map[string]entities.InspectionResult{
		"1/a.txt": {Target: targets[0], Verdict: entities.VerdictClean()},
		"2/b.exe": {Target: targets[1], Verdict: entities.VerdictDangerousExtension("exe"), Outcome: entities.RemediationOutcome{Deleted: true}, Remediated: true},
		"3/c.iso": {Target: targets[2], Verdict: entities.VerdictSkippedTooLarge()},
		"4/d.js":  {Target: targets[3], Verdict: entities.VerdictDangerousExtension("js"), Outcome: entities.RemediationOutcome{Error: entities.DeleteFailed}, Remediated: true},
	}

	mockCache := mocks.NewMockCache(mockCtrl)
	gomock.InOrder(
		mockCache.EXPECT().TryLock("lock-scan-all", gomock.Any()).Return(nil),
		mockCache.EXPECT().Unlock("lock-scan-all").Return(nil),
	)

	mockStore := mocks.NewMockArtifactStore(mockCtrl)
	mockStore.EXPECT().List(gomock.Any()).Return(targets, nil)

	mockSettings := mocks.NewMockSettingsProvider(mockCtrl)
	mockSettings.EXPECT().Snapshot().Return(cfg).Times(1)

	mockInspector := mocks.NewMockInspector(mockCtrl)
	mockInspector.EXPECT().InspectWith(gomock.Any(), gomock.Any(), cfg).DoAndReturn(
		func(_ context.Context, target entities.ScanTarget, _ entities.ScanConfig) entities.InspectionResult {
			return results[target.ID]
		}).Times(len(targets))

	service := NewScanAllService(mockStore, mockCache, mockSettings, mockInspector, audit.NewRecorder(nil, logging.NewDiscardLog()), 3, logging.NewDiscardLog())
	report, err := service.ScanAll(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 4, report.Scanned)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, report.Malicious)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "2/b.exe", report.Items[0].Target.ID)
	assert.Equal(t, entities.ActionDeleted, report.Items[0].Action)
	assert.Equal(t, "4/d.js", report.Items[1].Target.ID)
	assert.Equal(t, entities.ActionDeleteFailed, report.Items[1].Action)
}

func TestScanAllAlreadyRunning(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().TryLock("lock-scan-all", gomock.Any()).Return(errors.New("redislock: not obtained"))
	mockCache.EXPECT().Unlock(gomock.Any()).Times(0)

	mockStore := mocks.NewMockArtifactStore(mockCtrl)
	mockStore.EXPECT().List(gomock.Any()).Times(0)

	service := NewScanAllService(mockStore, mockCache, mocks.NewMockSettingsProvider(mockCtrl), mocks.NewMockInspector(mockCtrl), audit.NewRecorder(nil, logging.NewDiscardLog()), 1, logging.NewDiscardLog())
	_, err := service.ScanAll(context.Background())

	assert.ErrorIs(t, err, ErrScanAllInProgress)
}

func TestScanAllListFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Unlock(gomock.Any()).Return(nil).Times(1)

	mockStore := mocks.NewMockArtifactStore(mockCtrl)
	mockStore.EXPECT().List(gomock.Any()).Return(nil, errors.New("bucket gone"))

	service := NewScanAllService(mockStore, mockCache, mocks.NewMockSettingsProvider(mockCtrl), mocks.NewMockInspector(mockCtrl), audit.NewRecorder(nil, logging.NewDiscardLog()), 1, logging.NewDiscardLog())
	_, err := service.ScanAll(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrScanAllInProgress)
}

func TestScanAllCanceled(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Unlock(gomock.Any()).Return(nil)

	mockStore := mocks.NewMockArtifactStore(mockCtrl)
	mockStore.EXPECT().List(gomock.Any()).Return([]entities.ScanTarget{entities.NewScanTarget("1", "a", 1, "")}, nil)

	mockSettings := mocks.NewMockSettingsProvider(mockCtrl)
	mockSettings.EXPECT().Snapshot().Return(entities.ScanConfig{})

	mockInspector := mocks.NewMockInspector(mockCtrl)
	mockInspector.EXPECT().InspectWith(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	service := NewScanAllService(mockStore, mockCache, mockSettings, mockInspector, audit.NewRecorder(nil, logging.NewDiscardLog()), 1, logging.NewDiscardLog())
	_, err := service.ScanAll(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
