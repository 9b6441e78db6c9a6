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
	"encoding/json"
	"github.com/jarcoal/httpmock"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
)

const testWebhook = "https://hooks.slack.com/services/T000/B000/XXXX"

func TestSlackNotifierNotify(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		source  entities.OwnerRef
		wantErr bool
	}{
		{name: "message posted", status: http.StatusOK, source: entities.OwnerRef{ContentID: "post-42", CreatedBy: "7"}},
		{name: "message without content", status: http.StatusOK},
		{name: "webhook rejected", status: http.StatusForbidden, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Activate()
			defer httpmock.DeactivateAndReset()

			var received slack.WebhookMessage
			httpmock.RegisterResponder("POST", testWebhook, func(req *http.Request) (*http.Response, error) {
				assert.NoError(t, json.NewDecoder(req.Body).Decode(&received))
				return httpmock.NewStringResponse(tt.status, "ok"), nil
			})

			notifier := NewSlackNotifier(testWebhook, "C0123", logging.NewDiscardLog())
			err := notifier.Notify(context.Background(), entities.UserRef{ID: "7", Username: "alice"}, "invoice.exe", tt.source)

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
			assert.Equal(t, "C0123", received.Channel)
			assert.Contains(t, received.Text, "Security Alert: Malicious file removed")
			assert.Contains(t, received.Text, `"invoice.exe"`)
			assert.Contains(t, received.Text, "alice (7)")

			if tt.source.ContentID != "" {
				assert.Contains(t, received.Text, "Content: post-42")
			} else {
				assert.NotContains(t, received.Text, "Content:")
			}
		})
	}
}

func TestSlackNotifierSendMessage(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var received slack.WebhookMessage
	httpmock.RegisterResponder("POST", testWebhook, func(req *http.Request) (*http.Response, error) {
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		return httpmock.NewStringResponse(http.StatusOK, "ok"), nil
	})

	notifier := NewSlackNotifier(testWebhook, "C0123", logging.NewDiscardLog())
	assert.NoError(t, notifier.SendMessage("2 malicious uploads removed"))
	assert.Equal(t, "2 malicious uploads removed", received.Text)
	assert.Equal(t, "upload-sentry", received.Username)
}
