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
	"fmt"
	"upload-sentry/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/keyauth/v2"
	"github.com/gofiber/swagger"
	fibertrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gofiber/fiber.v2"
)

const (
	currentVersion  = "/v1"
	debugPath       = "/debug"
	swaggerPath     = "/swagger"
	healthcheckPath = "/healthcheck"
	metricsPath     = "/metrics"
)

type errorResponse struct {
	Error string `json:"error"`
}

func CreateFiberApp(fiberConfig FiberConfig, logger logging.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		BodyLimit: fiberConfig.MaxRequestSize,
		// Preventing possible security issues when interacting with the authentication filter
		CaseSensitive: true,
		UnescapePath:  false,
		StrictRouting: true,
	})

	// A panicking handler must not take the scanner down with it
	app.Use(recover.New())

	// Add datadog tracer middleware
	app.Use(fibertrace.Middleware())

	if err := useAuthorization(app, fiberConfig.AuthorizationKeys, logger); err != nil {
		return nil, err
	}

	app.Use(fiberConfig.RequestLogger)

	registerDiagnostics(app, fiberConfig, logger)

	v1 := app.Group(currentVersion)
	for _, handler := range fiberConfig.Handlers {
		v1.Add(handler.HTTPMethod, handler.Path, handler.HandlerFunc)
	}

	return app, nil
}

func useAuthorization(app *fiber.App, keys []string, logger logging.Logger) error {
	if len(keys) == 0 {
		logger.Warnw("No API keys specified, anyone with network access may change settings or delete files through a full scan")
		logger.Infow("Please, consider defining the environment variable HTTPSERVER_AUTHORIZATIONKEYS in your secrets manager.")
		return nil
	}

	authorizationKeys, err := PrepareAuthorizationKeys(keys)
	if err != nil {
		return fmt.Errorf("failed to prepare keys. %w", err)
	}

	app.Use(keyauth.New(keyauth.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(errorResponse{Error: err.Error()})
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			return ctx.Next()
		},
		Filter:    FiberAuthFilter,
		Validator: FiberAuthValidator(authorizationKeys),
	}))

	return nil
}

func registerDiagnostics(app *fiber.App, fiberConfig FiberConfig, logger logging.Logger) {
	if fiberConfig.Swagger {
		logger.Infow("Swagger endpoint enabled. This is a security sensitive configuration, please keep it disabled unless required")
		app.Get(swaggerPath+"/*", swagger.HandlerDefault)
	}

	if fiberConfig.Profiler {
		logger.Infow("Go profiler is enabled. This is a security sensitive configuration, please keep it disabled unless required")
		logger.Infow("Eg. Request: curl -XGET http://<hostname>:<port>/debug/pprof/profile?seconds=30  --output profile")
		app.Use(pprof.New())
	}

	app.Get(healthcheckPath+"/readiness", fiberConfig.Readiness)
	app.Get(healthcheckPath+"/liveness", fiberConfig.Liveness)

	if fiberConfig.Metrics != nil {
		app.Get(metricsPath, fiberConfig.Metrics)
	}
}
