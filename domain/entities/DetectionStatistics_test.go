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
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input    string
		expected Period
		err      error
	}{
		{input: "", expected: Day},
		{input: "day", expected: Day},
		{input: "month", expected: Month},
		{input: "year", err: ErrInvalidPeriod},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			period, err := ParsePeriod(tt.input)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.expected, period)
		})
	}
}

func TestDetectionStatisticsAdd(t *testing.T) {
	day := time.Date(2023, 5, 10, 13, 0, 0, 0, time.UTC)
	stats := NewDetectionStatistics(day)

	stats.Add(InspectionResult{Verdict: VerdictClean()})
	stats.Add(InspectionResult{Verdict: VerdictSkippedTooLarge()})
	stats.Add(InspectionResult{Verdict: VerdictSignatureMatch("eicar"), Outcome: RemediationOutcome{Deleted: true, Notified: true}, Remediated: true})
	stats.Add(InspectionResult{Verdict: VerdictDangerousExtension("exe"), Outcome: RemediationOutcome{Error: DeleteFailed}, Remediated: true})

	assert.Equal(t, DetectionStatistics{
		Date:       "2023-05-10",
		Scanned:    4,
		Clean:      1,
		Skipped:    1,
		Malicious:  2,
		Deleted:    1,
		Notified:   1,
		Failed:     1,
		LastUpdate: day,
	}, stats)
}

func TestMergeDetectionStatistics(t *testing.T) {
	older := time.Date(2023, 5, 10, 13, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	a := DetectionStatistics{Date: "2023-05-10", Scanned: 2, Clean: 2, LastUpdate: older}
	b := DetectionStatistics{Date: "2023-05-10", Scanned: 1, Malicious: 1, Deleted: 1, LastUpdate: newer}

	merged := MergeDetectionStatistics(a, b)

	assert.Equal(t, 3, merged.Scanned)
	assert.Equal(t, 2, merged.Clean)
	assert.Equal(t, 1, merged.Malicious)
	assert.Equal(t, 1, merged.Deleted)
	assert.Equal(t, newer, merged.LastUpdate)
	assert.Equal(t, merged, MergeDetectionStatistics(b, a))

	assert.Equal(t, b, MergeDetectionStatistics(DetectionStatistics{}, b))
}
