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

import "github.com/gofiber/fiber/v2"

type Handler struct {
	HTTPMethod  string
	Path        string
	HandlerFunc fiber.Handler
}

type FiberConfig struct {
	MaxRequestSize    int
	AuthorizationKeys []string
	Profiler          bool
	Swagger           bool

	Metrics       fiber.Handler
	RequestLogger fiber.Handler
	Readiness     fiber.Handler
	Liveness      fiber.Handler

	Handlers []Handler
}
