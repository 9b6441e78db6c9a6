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
	"fmt"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/pkg/awsutils"
)

var ErrSMSRateLimited = errors.New("sms rate limit exceeded")

// SMSNotifier sends removal notices to the uploader's phone and operator alerts to a fixed list of phones.
type SMSNotifier struct {
	sender  awsutils.SMSSender
	limiter common.RateLimiter
	phones  []string
	logger  logging.Logger
}

func NewSMSNotifier(sender awsutils.SMSSender, limiter common.RateLimiter, phones []string, logger logging.Logger) *SMSNotifier {
	return &SMSNotifier{sender: sender, limiter: limiter, phones: phones, logger: logger}
}

func (s *SMSNotifier) Notify(ctx context.Context, user entities.UserRef, fileName string, _ entities.OwnerRef) error {
	if user.Phone == "" {
		return fmt.Errorf("user %s has no phone registered", user.ID)
	}

	if !s.limiter.IsRequestAllowed(ctx) {
		s.logger.Warnw("SMS notification dropped by rate limiter", "user", user.ID)
		return ErrSMSRateLimited
	}

	message := fmt.Sprintf("%s. %s", alertSubject, removalMessage(fileName))
	if err := s.sender.SendSMS(ctx, user.Phone, message); err != nil {
		return fmt.Errorf("failed to send sms to user %s. %w", user.ID, err)
	}

	return nil
}

func (s *SMSNotifier) SendMessage(message string) error {
	var errs []error

	for _, phone := range s.phones {
		if !s.limiter.IsRequestAllowed(context.Background()) {
			errs = append(errs, ErrSMSRateLimited)
			break
		}

		if err := s.sender.SendSMS(context.Background(), phone, message); err != nil {
			s.logger.Errorw("Failed to send sms", "error", err, "phone", phone)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
