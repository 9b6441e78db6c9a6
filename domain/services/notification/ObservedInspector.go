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
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services"
)

// Observer receives inspection results as they are produced.
type Observer interface {
	Update(result entities.InspectionResult)
}

// ObservedInspector reports the results of inspections made outside the queue pipeline,
// such as direct uploads and manual scans, to the notification jobs.
type ObservedInspector struct {
	inspector services.Inspector
	observer  Observer
}

func NewObservedInspector(inspector services.Inspector, observer Observer) *ObservedInspector {
	return &ObservedInspector{inspector: inspector, observer: observer}
}

func (o *ObservedInspector) Inspect(ctx context.Context, target entities.ScanTarget) entities.InspectionResult {
	result := o.inspector.Inspect(ctx, target)
	o.observer.Update(result)

	return result
}

func (o *ObservedInspector) InspectWith(ctx context.Context, target entities.ScanTarget, cfg entities.ScanConfig) entities.InspectionResult {
	result := o.inspector.InspectWith(ctx, target, cfg)
	o.observer.Update(result)

	return result
}
