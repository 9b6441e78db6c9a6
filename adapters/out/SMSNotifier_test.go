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
	"context"
	"errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

func TestSMSNotifierNotify(t *testing.T) {
	user := entities.UserRef{ID: "7", Username: "alice", Phone: "+5511999999999"}

	tests := []struct {
		name      string
		user      entities.UserRef
		allowed   bool
		checkRate bool
		sendErr   error
		sends     int
		expected  error
		wantErr   bool
	}{
		{name: "sms sent", user: user, allowed: true, checkRate: true, sends: 1},
		{name: "rate limited", user: user, allowed: false, checkRate: true, expected: ErrSMSRateLimited, wantErr: true},
		{name: "sns failure", user: user, allowed: true, checkRate: true, sends: 1, sendErr: errors.New("throttled"), wantErr: true},
		{name: "user without phone", user: entities.UserRef{ID: "8"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			mockSender := mocks.NewMockSMSSender(mockCtrl)
			mockLimiter := mocks.NewMockRateLimiter(mockCtrl)

			if tt.checkRate {
				mockLimiter.EXPECT().IsRequestAllowed(gomock.Any()).Return(tt.allowed)
			}

			mockSender.EXPECT().SendSMS(gomock.Any(), tt.user.Phone, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, message string) error {
					assert.True(t, strings.HasPrefix(message, "Security Alert: Malicious file removed."))
					assert.Contains(t, message, `"payload.js"`)
					return tt.sendErr
				}).Times(tt.sends)

			notifier := NewSMSNotifier(mockSender, mockLimiter, nil, logging.NewDiscardLog())
			err := notifier.Notify(context.Background(), tt.user, "payload.js", entities.OwnerRef{})

			assert.Equal(t, tt.wantErr, err != nil)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestSMSNotifierSendMessage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	phones := []string{"+5511000000001", "+5511000000002", "+5511000000003"}

	mockSender := mocks.NewMockSMSSender(mockCtrl)
	mockLimiter := mocks.NewMockRateLimiter(mockCtrl)

	mockLimiter.EXPECT().IsRequestAllowed(gomock.Any()).Return(true).Times(2)
	mockLimiter.EXPECT().IsRequestAllowed(gomock.Any()).Return(false)
	mockSender.EXPECT().SendSMS(gomock.Any(), phones[0], "alert").Return(nil)
	mockSender.EXPECT().SendSMS(gomock.Any(), phones[1], "alert").Return(errors.New("invalid number"))

	notifier := NewSMSNotifier(mockSender, mockLimiter, phones, logging.NewDiscardLog())
	err := notifier.SendMessage("alert")

	assert.ErrorIs(t, err, ErrSMSRateLimited)
	assert.ErrorContains(t, err, "invalid number")
}
