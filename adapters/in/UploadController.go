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
	"fmt"
	"io"
	"path"
	"strings"
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/domain/services"
	"upload-sentry/fileutils"
	"upload-sentry/logging"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserName  = "X-User-Name"
	HeaderUserPhone = "X-User-Phone"
	HeaderContentID = "X-Content-ID"

	undeclaredMimeType = "application/octet-stream"
	fallbackFileName   = "upload"
)

type uploader struct {
	UserID    string `validate:"required,max=128"`
	UserName  string `validate:"max=256"`
	UserPhone string `validate:"omitempty,e164"`
	ContentID string `validate:"max=128"`
}

type UploadController struct {
	store     out.ArtifactWriter
	registry  out.OwnershipRegistry
	inspector services.Inspector
	validate  *validator.Validate
	logger    logging.Logger
}

func NewUploadController(store out.ArtifactWriter, registry out.OwnershipRegistry, inspector services.Inspector, logger logging.Logger) UploadController {
	return UploadController{store: store, registry: registry, inspector: inspector, validate: validator.New(), logger: logger}
}

// Upload
// @Summary		Stores and inspects an uploaded file
// @Tags		files
// @Accept		mpfd
// @Produce		json
// @Param		file			formData	file	true	"File to be uploaded"
// @Param		X-User-ID		header		string	true	"Uploader id"
// @Param		X-User-Name		header		string	false	"Uploader name"
// @Param		X-User-Phone	header		string	false	"Uploader phone in E.164 format"
// @Param		X-Content-ID	header		string	false	"Content the file is attached to"
// @Success		200 {object} adapterentities.UploadResponse
// @Failure		400 {object} adapterentities.UploadResponse
// @Failure		422 {object} adapterentities.UploadResponse
// @Failure		500 {object} adapterentities.UploadResponse
// @Security	ApiKey
// @Router      /files [post]
func (u *UploadController) Upload(c *fiber.Ctx) error {
	response := adapterentities.UploadResponse{}

	owner := uploader{
		UserID:    c.Get(HeaderUserID),
		UserName:  c.Get(HeaderUserName),
		UserPhone: c.Get(HeaderUserPhone),
		ContentID: c.Get(HeaderContentID),
	}
	if err := u.validate.Struct(owner); err != nil {
		u.logger.Errorw("Invalid uploader headers", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	file, err := c.FormFile("file")
	if err != nil {
		u.logger.Errorw("no file found", "error", err)
		response.Error = "no file found"

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	content, err := file.Open()
	if err != nil {
		u.logger.Errorw("failed to open file", "error", err)
		response.Error = "failed to open file"

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}
	defer content.Close()

	mimeType := file.Header.Get(fiber.HeaderContentType)
	if mimeType == "" || mimeType == undeclaredMimeType {
		mimeType, err = sniffMimeType(content)
		if err != nil {
			u.logger.Errorw("failed to detect mime type", "error", err, "filename", file.Filename)
			response.Error = "failed to read file"

			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}
	}

	target := entities.NewScanTarget(fmt.Sprintf("%s/%s", uuid.NewString(), storedName(file.Filename)), file.Filename, uint64(file.Size), mimeType)

	ctx := c.UserContext()
	if err = u.store.Put(ctx, target, content); err != nil {
		u.logger.Errorw("failed to store upload", "error", err, "filename", file.Filename, "filesize", file.Size)
		response.Error = "could not store file"

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	u.register(c, target, owner)

	result := u.inspector.Inspect(ctx, target)
	response = adapterentities.MapToUploadResponse(result)

	if result.Verdict.IsMalicious() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// register stores ownership data needed to notify the uploader. Failures only cost the notification.
func (u *UploadController) register(c *fiber.Ctx, target entities.ScanTarget, owner uploader) {
	ctx := c.UserContext()

	err := u.registry.RegisterOwner(ctx, target, entities.OwnerRef{ContentID: owner.ContentID, CreatedBy: owner.UserID})
	if err != nil {
		u.logger.Errorw("failed to register owner", "error", err, "id", target.ID, "user", owner.UserID)
	}

	err = u.registry.RegisterUser(ctx, entities.UserRef{ID: owner.UserID, Username: owner.UserName, Phone: owner.UserPhone})
	if err != nil {
		u.logger.Errorw("failed to register user", "error", err, "user", owner.UserID)
	}
}

func sniffMimeType(content io.ReadSeeker) (string, error) {
	mimeType, err := fileutils.DetectMimeType(content)
	if err != nil {
		return "", err
	}

	if _, err = content.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload. %w", err)
	}

	return mimeType, nil
}

func storedName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return fallbackFileName
	}

	return name
}
