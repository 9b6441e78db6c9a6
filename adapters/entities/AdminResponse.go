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
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services/audit"
	"upload-sentry/domain/services/settings"
)

type SettingsResponse struct {
	Settings   *settings.Form       `json:"settings,omitempty"`
	Violations []settings.Violation `json:"violations,omitempty"`
	Error      string               `json:"error,omitempty"`
}

type ScanReportItemResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Verdict *VerdictResponse `json:"verdict"`
	Action  string           `json:"action"`
}

type ScanReportResponse struct {
	ID         string                   `json:"id,omitempty"`
	StartedAt  *time.Time               `json:"startedAt,omitempty"`
	FinishedAt *time.Time               `json:"finishedAt,omitempty"`
	Scanned    int                      `json:"scanned"`
	Skipped    int                      `json:"skipped"`
	Malicious  int                      `json:"malicious"`
	Deleted    int                      `json:"deleted"`
	Failed     int                      `json:"failed"`
	Items      []ScanReportItemResponse `json:"items,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

func MapToScanReportResponse(report entities.ScanReport) ScanReportResponse {
	items := make([]ScanReportItemResponse, 0, len(report.Items))
	for _, item := range report.Items {
		items = append(items, ScanReportItemResponse{
			ID:      item.Target.ID,
			Name:    item.Target.DisplayName,
			Verdict: MapToVerdictResponse(item.Verdict),
			Action:  string(item.Action),
		})
	}

	return ScanReportResponse{
		ID:         report.ID,
		StartedAt:  &report.StartedAt,
		FinishedAt: &report.FinishedAt,
		Scanned:    report.Scanned,
		Skipped:    report.Skipped,
		Malicious:  report.Malicious,
		Deleted:    report.Deleted,
		Failed:     report.Failed,
		Items:      items,
	}
}

type LogEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Tag       string    `json:"tag,omitempty"`
}

type LogsResponse struct {
	Entries []LogEntryResponse `json:"entries"`
	Error   string             `json:"error,omitempty"`
}

func MapToLogsResponse(entries []entities.AuditEntry) LogsResponse {
	response := LogsResponse{Entries: make([]LogEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		response.Entries = append(response.Entries, LogEntryResponse{
			Timestamp: entry.Timestamp,
			Level:     string(entry.Level),
			Message:   entry.Message,
			Tag:       string(audit.TagOf(entry)),
		})
	}

	return response
}

type StatisticsResponse struct {
	Result map[string]entities.DetectionStatistics `json:"result,omitempty"`
	Error  string                                  `json:"error,omitempty"`
}
