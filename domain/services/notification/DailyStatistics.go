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
	"reflect"
	"sync"
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

// DailyStatistics accumulates inspection results in memory and merges them into the
// persisted daily counters on every flush.
type DailyStatistics struct {
	mu     sync.Mutex
	stats  map[string]entities.DetectionStatistics
	repo   out.StatisticsRepository
	now    func() time.Time
	logger logging.Logger
}

func NewDailyStatistics(repo out.StatisticsRepository, logger logging.Logger) *DailyStatistics {
	return &DailyStatistics{repo: repo, stats: make(map[string]entities.DetectionStatistics), now: time.Now, logger: logger}
}

func (d *DailyStatistics) Update(result entities.InspectionResult) {
	d.mu.Lock()
	defer d.mu.Unlock()

	today := entities.NewDetectionStatistics(d.now())

	stats, ok := d.stats[today.Date]
	if !ok {
		stats = today
	}

	stats.Add(result)
	stats.LastUpdate = today.LastUpdate
	d.stats[today.Date] = stats
}

func (d *DailyStatistics) UpdateGlobal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for date, value := range d.stats {
		day, err := time.Parse(entities.StatisticsDateFormat, date)
		if err != nil {
			d.logger.Errorw("Invalid statistics date", "error", err, "date", date)
			delete(d.stats, date)

			continue
		}

		previous, err := d.repo.GetByDate(day)
		if err != nil {
			d.logger.Errorw("Could not obtain previous statistics", "error", err, "date", date)
			continue
		}

		err = d.repo.Save(entities.MergeDetectionStatistics(previous, value))
		if err != nil {
			d.logger.Errorw("failed to save updated statistics", "error", err, "date", date, "statistics", value)
			continue
		}

		delete(d.stats, date)
	}
}

func (d *DailyStatistics) Name() string {
	return reflect.TypeOf(d).Elem().Name()
}
