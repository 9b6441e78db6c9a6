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
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

func TestMultiNotifier(t *testing.T) {
	user := entities.UserRef{ID: "7", Username: "alice"}
	source := entities.OwnerRef{ContentID: "post-42", CreatedBy: "7"}

	tests := []struct {
		name    string
		results []error
		wantErr bool
	}{
		{name: "all transports succeed", results: []error{nil, nil}},
		{name: "one transport fails", results: []error{errors.New("slack down"), nil}},
		{name: "all transports fail", results: []error{errors.New("slack down"), errors.New("sns down")}, wantErr: true},
		{name: "no transports", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			notifiers := make([]out.Notifier, 0, len(tt.results))
			for _, result := range tt.results {
				mockNotifier := mocks.NewMockNotifier(mockCtrl)
				mockNotifier.EXPECT().Notify(gomock.Any(), user, "invoice.exe", source).Return(result)
				notifiers = append(notifiers, mockNotifier)
			}

			notifier := NewMultiNotifier(logging.NewDiscardLog(), notifiers...)
			err := notifier.Notify(context.Background(), user, "invoice.exe", source)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
