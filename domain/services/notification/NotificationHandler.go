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
	"reflect"
	"strings"
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
)

type Handler struct {
	jobs   []Job
	logger logging.Logger
}

type Job interface {
	Update(result entities.InspectionResult)
	UpdateGlobal()
}

func NewNotificationHandler(jobs []Job, logger logging.Logger) *Handler {
	return &Handler{jobs: jobs, logger: logger}
}

func (n *Handler) Handle(ctx context.Context, request *entities.InspectionResult, _ *entities.OutputWriter[entities.Empty]) error {
	n.Update(*request)
	return nil
}

// Update feeds a result to every job. Jobs are safe for concurrent use.
func (n *Handler) Update(result entities.InspectionResult) {
	for _, job := range n.jobs {
		n.logger.Debugw("Running job", "job", reflect.ValueOf(job).Type())
		job.Update(result)
	}
}

func (n *Handler) HandleAsync(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				n.logger.Infow("Flushing notification jobs before termination")
				n.flush()
				n.logger.Infow("Flushing notification jobs before termination completed")

				return
			case <-ticker.C:
				n.flush()
			}
		}
	}()
}

func (n *Handler) flush() {
	for _, job := range n.jobs {
		job.UpdateGlobal()
	}
}

func (n *Handler) Name() string {
	var jobs []string
	for _, job := range n.jobs {
		jobs = append(jobs, reflect.TypeOf(job).Elem().Name())
	}

	return "Notification Handler with jobs: " + strings.Join(jobs, ", ")
}
