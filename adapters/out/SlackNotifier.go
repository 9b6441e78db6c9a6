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
	"fmt"
	"github.com/slack-go/slack"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
)

const (
	alertSubject = "Security Alert: Malicious file removed"
	alertBody    = "A potentially malicious file \"%s\" that you uploaded has been removed for security reasons."
)

func removalMessage(fileName string) string {
	return fmt.Sprintf(alertBody, fileName)
}

type SlackNotifier struct {
	webhook   string
	channelID string
	username  string
	logger    logging.Logger
}

func NewSlackNotifier(webhook, channelID string, logger logging.Logger) *SlackNotifier {
	return &SlackNotifier{webhook: webhook, channelID: channelID, username: "upload-sentry", logger: logger}
}

func (s *SlackNotifier) Notify(ctx context.Context, user entities.UserRef, fileName string, source entities.OwnerRef) error {
	text := fmt.Sprintf("*%s*\n%s\nUser: %s (%s)", alertSubject, removalMessage(fileName), user.Username, user.ID)
	if source.ContentID != "" {
		text = fmt.Sprintf("%s\nContent: %s", text, source.ContentID)
	}

	if err := s.post(ctx, text); err != nil {
		return fmt.Errorf("failed to notify user %s through slack. %w", user.ID, err)
	}

	return nil
}

func (s *SlackNotifier) SendMessage(message string) error {
	return s.post(context.Background(), message)
}

func (s *SlackNotifier) post(ctx context.Context, text string) error {
	msg := slack.WebhookMessage{
		Username: s.username,
		Channel:  s.channelID,
		Text:     text,
	}

	err := slack.PostWebhookContext(ctx, s.webhook, &msg)
	if err != nil {
		s.logger.Errorw("Failed to post slack message", "error", err, "channel", s.channelID)
	}

	return err
}
