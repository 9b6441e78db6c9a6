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

import "upload-sentry/domain/entities"

type VerdictResponse struct {
	Kind      string `json:"kind"`
	Reason    string `json:"reason,omitempty"`
	Malicious bool   `json:"malicious"`
}

type OutcomeResponse struct {
	Deleted  bool   `json:"deleted"`
	Notified bool   `json:"notified"`
	Error    string `json:"error,omitempty"`
}

type UploadResponse struct {
	ID       string           `json:"id,omitempty"`
	Name     string           `json:"name,omitempty"`
	MimeType string           `json:"mimeType,omitempty"`
	Size     uint64           `json:"size,omitempty"`
	Verdict  *VerdictResponse `json:"verdict,omitempty"`
	Outcome  *OutcomeResponse `json:"outcome,omitempty"`
	Action   string           `json:"action,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func MapToVerdictResponse(verdict entities.Verdict) *VerdictResponse {
	return &VerdictResponse{Kind: verdict.Kind.String(), Reason: verdict.Reason, Malicious: verdict.IsMalicious()}
}

func MapToUploadResponse(result entities.InspectionResult) UploadResponse {
	response := UploadResponse{
		ID:       result.Target.ID,
		Name:     result.Target.DisplayName,
		MimeType: result.Target.MimeType,
		Size:     result.Target.Size,
		Verdict:  MapToVerdictResponse(result.Verdict),
	}

	if result.Remediated {
		response.Outcome = &OutcomeResponse{
			Deleted:  result.Outcome.Deleted,
			Notified: result.Outcome.Notified,
			Error:    string(result.Outcome.Error),
		}
		response.Action = string(entities.ActionFromOutcome(result.Outcome))
	}

	return response
}
