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
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

var ErrNoNotifier = errors.New("no notifier configured")

// MultiNotifier delivers a notification through every transport and succeeds if at least one of them does.
type MultiNotifier struct {
	notifiers []out.Notifier
	logger    logging.Logger
}

func NewMultiNotifier(logger logging.Logger, notifiers ...out.Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers, logger: logger}
}

func (m *MultiNotifier) Notify(ctx context.Context, user entities.UserRef, fileName string, source entities.OwnerRef) error {
	if len(m.notifiers) == 0 {
		return ErrNoNotifier
	}

	var errs []error
	for _, notifier := range m.notifiers {
		err := notifier.Notify(ctx, user, fileName, source)
		if err != nil {
			m.logger.Warnw("Notification transport failed", "error", err, "user", user.ID)
			errs = append(errs, err)
		}
	}

	if len(errs) == len(m.notifiers) {
		return errors.Join(errs...)
	}

	return nil
}
