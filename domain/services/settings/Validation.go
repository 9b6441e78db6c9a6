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

package settings

import (
	"encoding/hex"
	"fmt"
	"github.com/go-playground/validator/v10"
	"reflect"
	"regexp"
	"strings"
)

const (
	MinScanSize = 1024
	MaxScanSize = 1073741824
)

var (
	extensionPattern = regexp.MustCompile(`(?i)^[a-z0-9]+$`)
	mimeTypePattern  = regexp.MustCompile(`(?i)^[a-z0-9\-/+.]+$`)
)

type Violation struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Rule  string `json:"rule"`
}

// ConfigValidationError lists every rejected entry of a settings form.
type ConfigValidationError struct {
	Violations []Violation
}

func (e *ConfigValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		fields = append(fields, fmt.Sprintf("%s=%q (%s)", violation.Field, violation.Value, violation.Rule))
	}

	return "invalid settings: " + strings.Join(fields, ", ")
}

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation("file_extension", func(fl validator.FieldLevel) bool {
		return extensionPattern.MatchString(fl.Field().String())
	})

	_ = validate.RegisterValidation("mime_type", func(fl validator.FieldLevel) bool {
		return mimeTypePattern.MatchString(fl.Field().String())
	})

	_ = validate.RegisterValidation("hex_pattern", func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		if value == "" {
			return false
		}

		_, err := hex.DecodeString(value)

		return err == nil
	})

	return validate
}

func toValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]Violation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, Violation{
			Field: fieldError.Field(),
			Value: fmt.Sprint(fieldError.Value()),
			Rule:  fieldError.Tag(),
		})
	}

	return &ConfigValidationError{Violations: violations}
}
