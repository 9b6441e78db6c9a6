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

import "time"

type InspectionRequest struct {
	Target    ScanTarget
	MessageID string // Receipt handle from SQS, used to acknowledge the message after processing
}

type InspectionResult struct {
	Target     ScanTarget
	Verdict    Verdict
	Outcome    RemediationOutcome
	Remediated bool // Remediation pipeline was invoked for this target
	MessageID  string
}

type Action string

const (
	ActionDeleted        Action = "deleted"
	ActionDetected       Action = "detected"
	ActionDeleteFailed   Action = "delete_failed"
	ActionAlreadyDeleted Action = "already_deleted"
)

func ActionFromOutcome(outcome RemediationOutcome) Action {
	switch {
	case outcome.Deleted:
		return ActionDeleted
	case outcome.Error == DeleteFailed:
		return ActionDeleteFailed
	case outcome.Error == AlreadyDeleted:
		return ActionAlreadyDeleted
	default:
		return ActionDetected
	}
}

type ScanReportItem struct {
	Target  ScanTarget
	Verdict Verdict
	Action  Action
}

type ScanReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Scanned    int
	Skipped    int
	Malicious  int
	Deleted    int
	Failed     int
	Items      []ScanReportItem
}

func (r *ScanReport) Add(result InspectionResult) {
	r.Scanned++

	if result.Verdict.Kind == SkippedTooLarge {
		r.Skipped++
	}

	if !result.Verdict.IsMalicious() {
		return
	}

	r.Malicious++
	if result.Outcome.Deleted {
		r.Deleted++
	}

	if result.Outcome.Failed() {
		r.Failed++
	}

	r.Items = append(r.Items, ScanReportItem{
		Target:  result.Target,
		Verdict: result.Verdict,
		Action:  ActionFromOutcome(result.Outcome),
	})
}
