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

package entities

import (
	"errors"
	"time"
)

type Period string

// ViewerMimetype selects the channel a statistics report is delivered through.
type ViewerMimetype string

const (
	Day   Period = "day"
	Month Period = "month"

	StatisticsDateFormat = "2006-01-02"
)

var ErrInvalidPeriod = errors.New("invalid period, expected day or month")

func ParsePeriod(period string) (Period, error) {
	switch Period(period) {
	case Day, "":
		return Day, nil
	case Month:
		return Month, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// DetectionStatistics aggregates inspection results of a single day.
type DetectionStatistics struct {
	Date       string    `json:"date"`
	Scanned    int       `json:"scanned"`
	Clean      int       `json:"clean"`
	Skipped    int       `json:"skipped"`
	Malicious  int       `json:"malicious"`
	Deleted    int       `json:"deleted"`
	Notified   int       `json:"notified"`
	Failed     int       `json:"failed"`
	LastUpdate time.Time `json:"last_update"`
}

func NewDetectionStatistics(day time.Time) DetectionStatistics {
	return DetectionStatistics{Date: day.UTC().Format(StatisticsDateFormat), LastUpdate: day.UTC()}
}

func (s *DetectionStatistics) Add(result InspectionResult) {
	s.Scanned++

	switch {
	case result.Verdict.Kind == Clean:
		s.Clean++
	case result.Verdict.Kind == SkippedTooLarge:
		s.Skipped++
	case result.Verdict.IsMalicious():
		s.Malicious++
	}

	if result.Outcome.Deleted {
		s.Deleted++
	}

	if result.Outcome.Notified {
		s.Notified++
	}

	if result.Outcome.Failed() {
		s.Failed++
	}
}

// MergeDetectionStatistics sums both counters. The date is taken from the most recent one.
func MergeDetectionStatistics(a, b DetectionStatistics) DetectionStatistics {
	merged := DetectionStatistics{
		Date:       a.Date,
		Scanned:    a.Scanned + b.Scanned,
		Clean:      a.Clean + b.Clean,
		Skipped:    a.Skipped + b.Skipped,
		Malicious:  a.Malicious + b.Malicious,
		Deleted:    a.Deleted + b.Deleted,
		Notified:   a.Notified + b.Notified,
		Failed:     a.Failed + b.Failed,
		LastUpdate: a.LastUpdate,
	}

	if b.LastUpdate.After(a.LastUpdate) || merged.Date == "" {
		merged.Date = b.Date
		merged.LastUpdate = b.LastUpdate
	}

	return merged
}
