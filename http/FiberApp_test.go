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

package http

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http/httptest"
	"testing"
	"upload-sentry/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func newTestApp(t *testing.T, keys []string) *fiber.App {
	t.Helper()

	app, err := CreateFiberApp(FiberConfig{
		AuthorizationKeys: keys,
		RequestLogger: func(c *fiber.Ctx) error {
			return c.Next()
		},
		Readiness: okHandler,
		Liveness:  okHandler,
		Handlers: []Handler{
			{HTTPMethod: "GET", Path: "/whoami", HandlerFunc: func(c *fiber.Ctx) error {
				return c.SendString(AuthenticatedUser(c))
			}},
			{HTTPMethod: "GET", Path: "/panic", HandlerFunc: func(c *fiber.Ctx) error {
				panic("boom")
			}},
		},
	}, logging.NewDiscardLog())
	require.NoError(t, err)

	return app
}

func TestCreateFiberApp(t *testing.T) {
	const secret = "correct horse battery staple"
	hashed := sha256.Sum256([]byte(secret))
	app := newTestApp(t, []string{"operator:" + hex.EncodeToString(hashed[:])})

	tests := []struct {
		name           string
		path           string
		authorization  string
		expectedStatus int
		expectedBody   string
	}{
		{name: "probes are public", path: "/healthcheck/liveness", expectedStatus: fiber.StatusOK},
		{name: "metrics are not registered without handler", path: "/metrics", expectedStatus: fiber.StatusNotFound},
		{name: "api requires key", path: "/v1/whoami", expectedStatus: fiber.StatusUnauthorized},
		{name: "wrong key", path: "/v1/whoami", authorization: "Bearer nope", expectedStatus: fiber.StatusUnauthorized},
		{name: "valid key", path: "/v1/whoami", authorization: "Bearer " + secret, expectedStatus: fiber.StatusOK, expectedBody: "operator"},
		{name: "swagger requires key", path: "/swagger/index.html", expectedStatus: fiber.StatusUnauthorized},
		{name: "panics are recovered", path: "/v1/panic", authorization: "Bearer " + secret, expectedStatus: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.path, nil)
			if tt.authorization != "" {
				request.Header.Set("Authorization", tt.authorization)
			}

			response, err := app.Test(request, -1)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, tt.expectedStatus, response.StatusCode)
			if tt.expectedBody != "" {
				body, _ := io.ReadAll(response.Body)
				assert.Equal(t, tt.expectedBody, string(body))
			}
		})
	}
}

func TestAnonymousUser(t *testing.T) {
	app := newTestApp(t, nil)

	response, err := app.Test(httptest.NewRequest("GET", "/v1/whoami", nil), -1)
	require.NoError(t, err)
	defer response.Body.Close()

	body, _ := io.ReadAll(response.Body)
	assert.Equal(t, "anonymous", string(body))
}

func TestInvalidKeysFailAppCreation(t *testing.T) {
	_, err := CreateFiberApp(FiberConfig{AuthorizationKeys: []string{"alias:cafe"}}, logging.NewDiscardLog())
	assert.Error(t, err)
}
