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

package out

import (
	"errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

func TestCacheAuditLogAppend(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().Push("audit-log", `{"timestamp":"2023-05-10 13:00:00","level":"WARNING","message":"Dangerous extension detected: a.exe"}`, int64(500)).Return(nil)

	auditLog := NewCacheAuditLog(mockCache, 500, logging.NewDiscardLog())
	assert.NoError(t, auditLog.Append(auditEntry(0, entities.LevelWarning, "Dangerous extension detected: a.exe")))
}

func TestCacheAuditLogRecent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("entries are returned in stored order", func(t *testing.T) {
		mockCache := mocks.NewMockCache(mockCtrl)
		mockCache.EXPECT().Range("audit-log", int64(3)).Return([]string{
			`{"timestamp":"2023-05-10 13:02:00","level":"INFO","message":"Malicious file deleted: a.exe (dangerous_extension(exe))"}`,
			`not json`,
			`{"timestamp":"2023-05-10 13:01:00","level":"ERROR","message":"multi\nline"}`,
		}, nil)

		auditLog := NewCacheAuditLog(mockCache, 500, logging.NewDiscardLog())
		entries, err := auditLog.Recent(3)

		require.NoError(t, err)
		assert.Equal(t, []entities.AuditEntry{
			auditEntry(2, entities.LevelInfo, "Malicious file deleted: a.exe (dangerous_extension(exe))"),
			auditEntry(1, entities.LevelError, "multi\nline"),
		}, entries)
	})

	t.Run("cache failure", func(t *testing.T) {
		mockCache := mocks.NewMockCache(mockCtrl)
		mockCache.EXPECT().Range(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		auditLog := NewCacheAuditLog(mockCache, 500, logging.NewDiscardLog())
		_, err := auditLog.Recent(3)
		assert.Error(t, err)
	})
}
