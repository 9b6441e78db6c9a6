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

package common

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/gofiber/fiber/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	sentryhttp "upload-sentry/http"
	"upload-sentry/logging"
)

const (
	EnforceRequestToDisk = 10 * 1024 * 1024
	testFilesDir         = "resources/testfiles"
)

// ChangePathForTesting moves the working directory to the module root, where config and test files live.
func ChangePathForTesting(t *testing.T) {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not locate module root")
	}

	if err := os.Chdir(filepath.Join(filepath.Dir(filename), "..")); err != nil {
		t.Fatalf("could not change to module root. %v", err)
	}
}

func LoadFile(t *testing.T, filename string) []byte {
	t.Helper()
	ChangePathForTesting(t)

	content, err := os.ReadFile(filepath.Join(testFilesDir, filename))
	if err != nil {
		t.Fatalf("could not load test file %s. %v", filename, err)
	}

	return content
}

func GetObjectFromJSON[T any](t *testing.T, data []byte) T {
	t.Helper()

	var object T
	if err := json.Unmarshal(data, &object); err != nil {
		t.Fatalf("could not decode %q. %v", data, err)
	}

	return object
}

func GetObjectJSON(t *testing.T, data any) string {
	t.Helper()

	encoded, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("could not encode %v. %v", data, err)
	}

	return string(encoded)
}

// RedirectContainerOutput follows the container logs until ctx is done.
func RedirectContainerOutput(ctx context.Context, pool *dockertest.Pool, containerID string) {
	err := pool.Client.Logs(docker.LogsOptions{
		Context:      ctx,
		Container:    containerID,
		OutputStream: os.Stdout,
		ErrorStream:  os.Stderr,
		Follow:       true,
		Stdout:       true,
		Stderr:       true,
		Timestamps:   true,
	})
	if err != nil && ctx.Err() == nil {
		log.Println(err)
	}
}

// CreateFiberAppForTest builds an app without authorization and with always healthy probes.
func CreateFiberAppForTest(handlers []sentryhttp.Handler) *fiber.App {
	healthy := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}

	app, err := sentryhttp.CreateFiberApp(sentryhttp.FiberConfig{
		MaxRequestSize: EnforceRequestToDisk,
		RequestLogger: func(c *fiber.Ctx) error {
			return c.Next()
		},
		Readiness: healthy,
		Liveness:  healthy,
		Handlers:  handlers,
	}, logging.NewDiscardLog())
	if err != nil {
		panic(err)
	}

	return app
}

// PrepareNamedRequestBody encodes data as a single multipart file field.
func PrepareNamedRequestBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("could not create form file. %v", err)
	}

	if _, err = part.Write(data); err != nil {
		t.Fatalf("could not write form file. %v", err)
	}

	if err = writer.Close(); err != nil {
		t.Fatalf("could not close multipart body. %v", err)
	}

	return body, writer.FormDataContentType()
}
