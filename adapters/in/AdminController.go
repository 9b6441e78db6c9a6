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
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/domain/services"
	"upload-sentry/domain/services/audit"
	"upload-sentry/domain/services/settings"
	sentryhttp "upload-sentry/http"
	"upload-sentry/logging"

	"github.com/gofiber/fiber/v2"
)

const (
	errInvalidSettings   = "invalid settings"
	errScanAllInProgress = "a manual scan is already running"
	errScanAllFailed     = "manual scan failed"
	errLogUnavailable    = "audit log unavailable"
)

type AdminController struct {
	settings settings.Manager
	scanner  services.ScanAller
	logs     audit.Reader
	logger   logging.Logger
}

func NewAdminController(settingsManager settings.Manager, scanner services.ScanAller, logs audit.Reader, logger logging.Logger) AdminController {
	return AdminController{settings: settingsManager, scanner: scanner, logs: logs, logger: logger}
}

// GetSettings
// @Summary		Get current scan settings
// @Tags		admin
// @Produce		json
// @Success		200 {object} adapterentities.SettingsResponse
// @Security	ApiKey
// @Router      /settings [get]
func (a *AdminController) GetSettings(c *fiber.Ctx) error {
	form := a.settings.Current()
	return c.Status(fiber.StatusOK).JSON(adapterentities.SettingsResponse{Settings: &form})
}

// UpdateSettings
// @Summary		Replace scan settings
// @Tags		admin
// @Accept		json
// @Produce		json
// @Param		request	body	settings.Form	true	"New settings"
// @Success		200 {object} adapterentities.SettingsResponse
// @Failure		400 {object} adapterentities.SettingsResponse
// @Failure		500 {object} adapterentities.SettingsResponse
// @Security	ApiKey
// @Router      /settings [put]
func (a *AdminController) UpdateSettings(c *fiber.Ctx) error {
	response := adapterentities.SettingsResponse{}

	var form settings.Form
	if err := c.BodyParser(&form); err != nil {
		a.logger.Errorw("Could not parse request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	err := a.settings.Save(form)

	var validationErr *settings.ConfigValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Error = errInvalidSettings
		response.Violations = validationErr.Violations

		return c.Status(fiber.StatusBadRequest).JSON(response)
	case err != nil:
		a.logger.Errorw("Failed to save settings", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	a.logger.Infow("Scan settings updated", "user", sentryhttp.AuthenticatedUser(c))

	current := a.settings.Current()
	response.Settings = &current

	return c.Status(fiber.StatusOK).JSON(response)
}

// ScanAll
// @Summary		Inspect every stored file
// @Tags		admin
// @Produce		json
// @Success		200 {object} adapterentities.ScanReportResponse
// @Failure		409 {object} adapterentities.ScanReportResponse
// @Failure		500 {object} adapterentities.ScanReportResponse
// @Security	ApiKey
// @Router      /scans [post]
func (a *AdminController) ScanAll(c *fiber.Ctx) error {
	a.logger.Infow("Manual scan requested", "user", sentryhttp.AuthenticatedUser(c))

	report, err := a.scanner.ScanAll(c.UserContext())

	switch {
	case errors.Is(err, services.ErrScanAllInProgress):
		return c.Status(fiber.StatusConflict).JSON(adapterentities.ScanReportResponse{Error: errScanAllInProgress})
	case err != nil:
		a.logger.Errorw("Manual scan failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(adapterentities.ScanReportResponse{Error: errScanAllFailed})
	}

	return c.Status(fiber.StatusOK).JSON(adapterentities.MapToScanReportResponse(report))
}

// GetLogs
// @Summary		Most recent audit log entries, newest first
// @Tags		admin
// @Produce		json
// @Param		limit	query	int	false	"Number of entries, up to 100"
// @Success		200 {object} adapterentities.LogsResponse
// @Failure		500 {object} adapterentities.LogsResponse
// @Security	ApiKey
// @Router      /logs [get]
func (a *AdminController) GetLogs(c *fiber.Ctx) error {
	entries, err := a.logs.Recent(c.QueryInt("limit", audit.DefaultRecentEntries))
	if err != nil {
		a.logger.Errorw("Failed to read audit log", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(adapterentities.LogsResponse{Error: errLogUnavailable})
	}

	return c.Status(fiber.StatusOK).JSON(adapterentities.MapToLogsResponse(entries))
}
