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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"

	"github.com/go-playground/validator/v10"
)

const (
	KeyDangerousExtensions = "dangerousExtensions"
	KeyDangerousMimeTypes  = "dangerousMimeTypes"
	KeyMaxScanSize         = "maxScanSize"
	KeySignatures          = "signatures"
	KeyEnableScanning      = "enableScanning"
	KeyAutoDelete          = "enableAutoDelete"
	KeyNotifications       = "enableNotifications"
	KeyLogging             = "enableLogging"
)

const listSeparator = ","

// Form is the editable view of the scan settings.
type Form struct {
	DangerousExtensions []string          `json:"dangerousExtensions" validate:"dive,file_extension"`
	DangerousMimeTypes  []string          `json:"dangerousMimeTypes" validate:"dive,mime_type"`
	MaxScanSize         uint64            `json:"maxScanSize" validate:"min=1024,max=1073741824"`
	Signatures          map[string]string `json:"signatures" validate:"dive,keys,required,endkeys,hex_pattern"`
	EnableScanning      bool              `json:"enableScanning"`
	EnableAutoDelete    bool              `json:"enableAutoDelete"`
	EnableNotifications bool              `json:"enableNotifications"`
	EnableLogging       bool              `json:"enableLogging"`
}

type Manager interface {
	Current() Form
	Save(form Form) error
}

type Service struct {
	mu                sync.RWMutex
	store             out.SettingsStore
	defaults          Form
	defaultSignatures entities.SignatureStore
	validate          *validator.Validate
	logger            logging.Logger
}

func NewSettingsService(store out.SettingsStore, defaults Form, logger logging.Logger) (*Service, error) {
	s := &Service{store: store, validate: newValidator(), logger: logger}

	defaults = normalize(defaults)
	if err := s.Validate(defaults); err != nil {
		return nil, fmt.Errorf("invalid default settings. %w", err)
	}

	signatures, err := entities.NewSignatureStore(defaults.Signatures)
	if err != nil {
		return nil, fmt.Errorf("invalid default signatures. %w", err)
	}

	s.defaults = defaults
	s.defaultSignatures = signatures

	return s, nil
}

func (s *Service) Validate(form Form) error {
	if err := s.validate.Struct(form); err != nil {
		return toValidationError(err)
	}

	return nil
}

// Current returns the stored settings, falling back to the defaults for missing or corrupt keys.
func (s *Service) Current() Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read()
}

// Snapshot materialises the settings for a single scan. The returned value shares nothing
// with later saves, so an in-flight scan keeps the configuration it started with.
func (s *Service) Snapshot() entities.ScanConfig {
	s.mu.RLock()
	form := s.read()
	s.mu.RUnlock()

	signatures, err := entities.NewSignatureStore(form.Signatures)
	if err != nil {
		s.logger.Errorw("Stored signatures are invalid, using defaults", "error", err)
		signatures = s.defaultSignatures
	}

	return entities.NewScanConfig(form.DangerousExtensions, form.DangerousMimeTypes, form.MaxScanSize, signatures, entities.ScanSwitches{
		EnableScanning:      form.EnableScanning,
		EnableAutoDelete:    form.EnableAutoDelete,
		EnableNotifications: form.EnableNotifications,
		EnableLogging:       form.EnableLogging,
	})
}

// Save validates the whole form, then writes every key in one atomic store call.
func (s *Service) Save(form Form) error {
	form = normalize(form)
	if err := s.Validate(form); err != nil {
		return err
	}

	signatures, err := json.Marshal(form.Signatures)
	if err != nil {
		return fmt.Errorf("failed to encode signatures. %w", err)
	}

	values := map[string]string{
		KeyDangerousExtensions: strings.Join(form.DangerousExtensions, listSeparator),
		KeyDangerousMimeTypes:  strings.Join(form.DangerousMimeTypes, listSeparator),
		KeyMaxScanSize:         strconv.FormatUint(form.MaxScanSize, 10),
		KeySignatures:          string(signatures),
		KeyEnableScanning:      strconv.FormatBool(form.EnableScanning),
		KeyAutoDelete:          strconv.FormatBool(form.EnableAutoDelete),
		KeyNotifications:       strconv.FormatBool(form.EnableNotifications),
		KeyLogging:             strconv.FormatBool(form.EnableLogging),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SetAll(values); err != nil {
		return fmt.Errorf("failed to save settings. %w", err)
	}

	s.logger.Infow("Scan settings saved", "extensions", len(form.DangerousExtensions), "mime_types", len(form.DangerousMimeTypes),
		"signatures", len(form.Signatures), "max_scan_size", form.MaxScanSize)

	return nil
}

func (s *Service) read() Form {
	return Form{
		DangerousExtensions: s.list(KeyDangerousExtensions, s.defaults.DangerousExtensions),
		DangerousMimeTypes:  s.list(KeyDangerousMimeTypes, s.defaults.DangerousMimeTypes),
		MaxScanSize:         s.size(KeyMaxScanSize, s.defaults.MaxScanSize),
		Signatures:          s.signatures(KeySignatures, s.defaults.Signatures),
		EnableScanning:      s.flag(KeyEnableScanning, s.defaults.EnableScanning),
		EnableAutoDelete:    s.flag(KeyAutoDelete, s.defaults.EnableAutoDelete),
		EnableNotifications: s.flag(KeyNotifications, s.defaults.EnableNotifications),
		EnableLogging:       s.flag(KeyLogging, s.defaults.EnableLogging),
	}
}

func (s *Service) list(key string, defaultValue []string) []string {
	value := s.store.Get(key, strings.Join(defaultValue, listSeparator))
	return splitList(value)
}

func (s *Service) size(key string, defaultValue uint64) uint64 {
	raw := s.store.Get(key, strconv.FormatUint(defaultValue, 10))

	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		s.logger.Errorw("Stored setting is not a number, using default", "key", key, "value", raw, "error", err)
		return defaultValue
	}

	return value
}

func (s *Service) flag(key string, defaultValue bool) bool {
	raw := s.store.Get(key, strconv.FormatBool(defaultValue))

	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		s.logger.Errorw("Stored setting is not a boolean, using default", "key", key, "value", raw, "error", err)
		return defaultValue
	}

	return value
}

func (s *Service) signatures(key string, defaultValue map[string]string) map[string]string {
	raw := s.store.Get(key, "")
	if raw == "" {
		return copyMap(defaultValue)
	}

	var value map[string]string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Errorw("Stored signatures are not valid JSON, using defaults", "key", key, "error", err)
		return copyMap(defaultValue)
	}

	return value
}

func normalize(form Form) Form {
	extensions := make([]string, 0, len(form.DangerousExtensions))
	for _, extension := range form.DangerousExtensions {
		if extension = strings.ToLower(strings.TrimSpace(extension)); extension != "" {
			extensions = append(extensions, extension)
		}
	}

	mimeTypes := make([]string, 0, len(form.DangerousMimeTypes))
	for _, mimeType := range form.DangerousMimeTypes {
		if mimeType = strings.TrimSpace(mimeType); mimeType != "" {
			mimeTypes = append(mimeTypes, mimeType)
		}
	}

	signatures := make(map[string]string, len(form.Signatures))
	for name, pattern := range form.Signatures {
		signatures[strings.TrimSpace(name)] = strings.ToLower(strings.TrimSpace(pattern))
	}

	form.DangerousExtensions = extensions
	form.DangerousMimeTypes = mimeTypes
	form.Signatures = signatures

	return form
}

func splitList(value string) []string {
	values := make([]string, 0)
	for _, item := range strings.Split(value, listSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}

	return values
}

func copyMap(value map[string]string) map[string]string {
	result := make(map[string]string, len(value))
	for k, v := range value {
		result[k] = v
	}

	return result
}
