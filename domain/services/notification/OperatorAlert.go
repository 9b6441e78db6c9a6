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
	"fmt"
	"sort"
	"sync"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

// OperatorAlert batches malicious detections and reports them to the operators channels.
type OperatorAlert struct {
	mu         sync.Mutex
	detections map[entities.Action][]string
	messengers []out.Messenger
	logger     logging.Logger
}

func NewOperatorAlert(messengers []out.Messenger, logger logging.Logger) *OperatorAlert {
	return &OperatorAlert{detections: make(map[entities.Action][]string), messengers: messengers, logger: logger}
}

func (o *OperatorAlert) Update(result entities.InspectionResult) {
	if !result.Verdict.IsMalicious() {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	action := entities.ActionFromOutcome(result.Outcome)
	o.detections[action] = append(o.detections[action], fmt.Sprintf("%s (%s)", result.Target.DisplayName, result.Verdict))
}

func (o *OperatorAlert) UpdateGlobal() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.detections) == 0 || len(o.messengers) == 0 {
		return
	}

	message := o.message()
	delivered := false

	for _, messenger := range o.messengers {
		if err := messenger.SendMessage(message); err != nil {
			o.logger.Errorw("failed to send operator alert", "error", err)
			continue
		}

		delivered = true
	}

	// Detections are kept for the next round until at least one channel accepts the message
	if delivered {
		o.detections = make(map[entities.Action][]string)
	}
}

func (o *OperatorAlert) message() string {
	actions := make([]string, 0, len(o.detections))
	for action := range o.detections {
		actions = append(actions, string(action))
	}
	sort.Strings(actions)

	message := "Malicious uploads detected, please check the audit log for more information:\n"
	for _, action := range actions {
		files := o.detections[entities.Action(action)]
		message += fmt.Sprintf("%s -> %d\n", action, len(files))

		for _, file := range files {
			message += fmt.Sprintf("  %s\n", file)
		}
	}

	return message
}
