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
)

func TestScanReportAdd(t *testing.T) {
	report := ScanReport{}
	target := NewScanTarget("1", "a.exe", 1, "")

	report.Add(InspectionResult{Target: target, Verdict: VerdictClean()})
	report.Add(InspectionResult{Target: target, Verdict: VerdictSkippedTooLarge()})
	report.Add(InspectionResult{Target: target, Verdict: VerdictDangerousExtension("exe"), Outcome: RemediationOutcome{Deleted: true, Notified: true}})
	report.Add(InspectionResult{Target: target, Verdict: VerdictSignatureMatch("EICAR"), Outcome: RemediationOutcome{Error: DeleteFailed}})
	report.Add(InspectionResult{Target: target, Verdict: VerdictDangerousMime("application/javascript")})

	assert.Equal(t, 5, report.Scanned)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 3, report.Malicious)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []Action{ActionDeleted, ActionDeleteFailed, ActionDetected}, []Action{report.Items[0].Action, report.Items[1].Action, report.Items[2].Action})
}

func TestVerdict(t *testing.T) {
	assert.False(t, VerdictClean().IsMalicious())
	assert.False(t, VerdictSkippedTooLarge().IsMalicious())
	assert.True(t, VerdictDangerousExtension("exe").IsMalicious())
	assert.True(t, VerdictDangerousMime("application/javascript").IsMalicious())
	assert.True(t, VerdictSignatureMatch("EICAR").IsMalicious())
	assert.Equal(t, "signature_match(EICAR)", VerdictSignatureMatch("EICAR").String())
	assert.Equal(t, "clean", VerdictClean().String())
}
