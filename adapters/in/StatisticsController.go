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

package in

import (
	"errors"
	"time"
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services"
	"upload-sentry/logging"

	"github.com/gofiber/fiber/v2"
)

const (
	MIMEApplicationSMS   entities.ViewerMimetype = "application/vnd.uploadsentry.statistics.sms.v1"
	MIMEApplicationSlack entities.ViewerMimetype = "application/vnd.uploadsentry.statistics.slack.v1"
	MIMEApplicationJSON  entities.ViewerMimetype = "application/json"
)

const (
	errUnsupportedAcceptType = "unsupported accept type"
	errReportNotSent         = "report could not be sent"
)

type StatisticsController struct {
	statisticsService services.StatisticsService
	logger            logging.Logger
}

func NewStatisticsController(statisticsService services.StatisticsService, logger logging.Logger) StatisticsController {
	return StatisticsController{statisticsService: statisticsService, logger: logger}
}

// GetStatistics
// @Summary		Get inspection statistics
// @Description	Returns the statistics as JSON, or sends them to slack or SMS depending on the Accept header
// @Tags		statistics
// @Accept		json
// @Produce		json
// @Param		period	query	string	false	"Restrict result to single day or month"
// @Param		date	query	string	false	"Reference date with format YYYY-MM-DD"
// @Success		200 {object} adapterentities.StatisticsResponse
// @Failure		400 {object} adapterentities.StatisticsResponse
// @Failure		500 {object} adapterentities.StatisticsResponse
// @Security	ApiKey
// @Router      /statistics [get]
func (s *StatisticsController) GetStatistics(c *fiber.Ctx) error {
	var response adapterentities.StatisticsResponse

	parsedDate, err := common.ParseDate(c.Query("date"), time.Now().UTC())
	if err != nil {
		response.Error = err.Error()
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	parsedPeriod, err := entities.ParsePeriod(c.Query("period"))
	if err != nil {
		response.Error = err.Error()
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	acceptType := entities.ViewerMimetype(c.Get(fiber.HeaderAccept))
	switch acceptType {
	case MIMEApplicationJSON, "", "*/*":
		result, err := s.statisticsService.GetStatistics(parsedDate, parsedPeriod)
		if err != nil {
			s.logger.Errorw("Failed to get statistics", "error", err)
			response.Error = err.Error()

			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}
		response.Result = result

		return c.Status(fiber.StatusOK).JSON(response)
	case MIMEApplicationSMS, MIMEApplicationSlack:
		err := s.statisticsService.Show(acceptType, parsedDate, parsedPeriod)
		if errors.Is(err, services.ErrUnknownViewer) {
			response.Error = errUnsupportedAcceptType
			return c.Status(fiber.StatusBadRequest).JSON(response)
		}

		if err != nil {
			response.Error = errReportNotSent
			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}

		return c.Status(fiber.StatusOK).JSON(response)
	default:
		response.Error = errUnsupportedAcceptType
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}
}
