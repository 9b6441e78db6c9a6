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
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/services"
	http2 "upload-sentry/http"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

func newStatisticsApp(service services.StatisticsService) *fiber.App {
	statisticsController := NewStatisticsController(service, logging.NewDiscardLog())
	handlers := []http2.Handler{
		{HTTPMethod: "GET", Path: "/statistics", HandlerFunc: statisticsController.GetStatistics},
	}

	return common.CreateFiberAppForTest(handlers)
}

func TestGetStatisticsResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	date := time.Date(2023, time.May, 17, 0, 0, 0, 0, time.UTC)
	stats := map[string]entities.DetectionStatistics{
		"2023-05-17": {Date: "2023-05-17", Scanned: 12, Malicious: 2, Deleted: 2, LastUpdate: date},
	}
	expected := adapterentities.StatisticsResponse{Result: stats}

	mockStatisticsService := mocks.NewMockStatisticsService(mockCtrl)
	mockStatisticsService.EXPECT().GetStatistics(date, entities.Month).Return(stats, nil)

	app := newStatisticsApp(mockStatisticsService)
	request := httptest.NewRequest("GET", "/v1/statistics?date=2023-05-17&period=month", http.NoBody)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer response.Body.Close()

	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	assert.NoError(t, err)

	obtained := common.GetObjectFromJSON[adapterentities.StatisticsResponse](t, body)
	assert.Equal(t, expected, obtained)
}

func TestShowStatisticsResult(t *testing.T) {
	tests := []struct {
		name     string
		accept   entities.ViewerMimetype
		showErr  error
		expected int
	}{
		{name: "slack report", accept: MIMEApplicationSlack, expected: fiber.StatusOK},
		{name: "sms report", accept: MIMEApplicationSMS, expected: fiber.StatusOK},
		{name: "viewer not configured", accept: MIMEApplicationSMS, showErr: services.ErrUnknownViewer, expected: fiber.StatusBadRequest},
		{name: "viewer failure", accept: MIMEApplicationSlack, showErr: errors.New("webhook disabled"), expected: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			mockStatisticsService := mocks.NewMockStatisticsService(mockCtrl)
			mockStatisticsService.EXPECT().Show(tt.accept, gomock.Any(), entities.Day).Return(tt.showErr)

			app := newStatisticsApp(mockStatisticsService)
			request := httptest.NewRequest("GET", "/v1/statistics", http.NoBody)
			request.Header.Add(fiber.HeaderAccept, string(tt.accept))

			response, err := app.Test(request, -1)
			if err != nil {
				t.Errorf("failed to send request. %v", err)
			}
			defer response.Body.Close()

			assert.Equal(t, tt.expected, response.StatusCode)
		})
	}
}

func TestInvalidStatisticsRequest(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStatisticsService := mocks.NewMockStatisticsService(mockCtrl)
	app := newStatisticsApp(mockStatisticsService)

	tests := []struct {
		name   string
		url    string
		accept string
	}{
		{name: "invalid period", url: "/v1/statistics?period=invalidperiod"},
		{name: "invalid date", url: "/v1/statistics?date=2022-13-01"},
		{name: "invalid date format", url: "/v1/statistics?date=20-01-01"},
		{name: "unsupported accept type", url: "/v1/statistics", accept: "text/csv"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, http.NoBody)
			if tt.accept != "" {
				request.Header.Add(fiber.HeaderAccept, tt.accept)
			}

			response, err := app.Test(request, -1)
			if err != nil {
				t.Errorf("failed to send request. %v", err)
			}
			defer response.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)

			body, err := io.ReadAll(response.Body)
			assert.NoError(t, err)

			obtained := common.GetObjectFromJSON[adapterentities.StatisticsResponse](t, body)
			assert.NotEmpty(t, obtained.Error)
			assert.Empty(t, obtained.Result)
		})
	}
}
