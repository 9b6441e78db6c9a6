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

package services

import (
	"errors"
	"fmt"
	"sort"
	"time"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

var ErrUnknownViewer = errors.New("no messenger registered for mimetype")

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_statistics_service.go -package=mocks -source=StatisticsService.go
type StatisticsService interface {
	GetStatistics(date time.Time, period entities.Period) (map[string]entities.DetectionStatistics, error)
	Show(mimetype entities.ViewerMimetype, date time.Time, period entities.Period) error
}

type DetectionStatisticsService struct {
	repository out.StatisticsRepository
	messengers map[entities.ViewerMimetype]out.Messenger
	logger     logging.Logger
}

func NewDetectionStatisticsService(repository out.StatisticsRepository, messengers map[entities.ViewerMimetype]out.Messenger, logger logging.Logger) *DetectionStatisticsService {
	return &DetectionStatisticsService{repository: repository, messengers: messengers, logger: logger}
}

func (s *DetectionStatisticsService) GetStatistics(date time.Time, period entities.Period) (map[string]entities.DetectionStatistics, error) {
	switch period {
	case entities.Day:
		stats, err := s.repository.GetByDate(date)
		if err != nil {
			return map[string]entities.DetectionStatistics{}, fmt.Errorf("failed to get statistics of %s. %w", date.Format(entities.StatisticsDateFormat), err)
		}

		return map[string]entities.DetectionStatistics{stats.Date: stats}, nil
	case entities.Month:
		stats, err := s.repository.GetByMonth(date)
		if err != nil {
			return map[string]entities.DetectionStatistics{}, fmt.Errorf("failed to get statistics of %s. %w", date.Format("Jan 2006"), err)
		}

		return stats, nil
	default:
		return map[string]entities.DetectionStatistics{}, entities.ErrInvalidPeriod
	}
}

func (s *DetectionStatisticsService) Show(mimetype entities.ViewerMimetype, date time.Time, period entities.Period) error {
	messenger, ok := s.messengers[mimetype]
	if !ok {
		s.logger.Errorw("Could not find messenger for mimetype", "mimetype", mimetype)
		return ErrUnknownViewer
	}

	description, err := generateDescription(date, period)
	if err != nil {
		return err
	}

	results, err := s.GetStatistics(date, period)
	if err != nil {
		s.logger.Errorw("Failed to get detection statistics", "error", err)
		return err
	}

	if err = messenger.SendMessage(generateReport(description, results)); err != nil {
		s.logger.Errorw("Failed to send statistics report", "error", err, "mimetype", mimetype)
		return fmt.Errorf("failed to send statistics report. %w", err)
	}

	return nil
}

func generateDescription(date time.Time, period entities.Period) (string, error) {
	switch period {
	case entities.Day:
		return fmt.Sprintf("Upload inspections %s", date.Format("02-01-2006")), nil
	case entities.Month:
		return fmt.Sprintf("Upload inspections %s", date.Format("Jan 2006")), nil
	default:
		return "", entities.ErrInvalidPeriod
	}
}

func generateReport(description string, results map[string]entities.DetectionStatistics) string {
	days := make([]string, 0, len(results))
	for day := range results {
		days = append(days, day)
	}
	sort.Strings(days)

	var total entities.DetectionStatistics
	for _, day := range days {
		total = entities.MergeDetectionStatistics(total, results[day])
	}

	return fmt.Sprintf(
		"%s:\n"+
			"- %s scanned\n"+
			"- %s skipped\n"+
			"- %s malicious\n"+
			"- %s deleted\n"+
			"- %s notified\n"+
			"- %s failed\n",
		description,
		common.ConvertNumberToHumanReadable(total.Scanned),
		common.ConvertNumberToHumanReadable(total.Skipped),
		common.ConvertNumberToHumanReadable(total.Malicious),
		common.ConvertNumberToHumanReadable(total.Deleted),
		common.ConvertNumberToHumanReadable(total.Notified),
		common.ConvertNumberToHumanReadable(total.Failed))
}
