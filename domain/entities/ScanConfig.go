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

package entities

import (
	"sort"
	"strings"
)

type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	set := make(StringSet, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}

	return set
}

func (s StringSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for value := range s {
		values = append(values, value)
	}
	sort.Strings(values)

	return values
}

// ScanConfig is the snapshot of settings a single scan runs under.
// It must be built once per scan and never modified afterwards.
type ScanConfig struct {
	DangerousExtensions StringSet
	DangerousMimeTypes  StringSet
	MaxScanSizeBytes    uint64
	Signatures          SignatureStore
	EnableScanning      bool
	EnableAutoDelete    bool
	EnableNotifications bool
	EnableLogging       bool
}

type ScanSwitches struct {
	EnableScanning      bool
	EnableAutoDelete    bool
	EnableNotifications bool
	EnableLogging       bool
}

func NewScanConfig(extensions, mimeTypes []string, maxScanSize uint64, signatures SignatureStore, switches ScanSwitches) ScanConfig {
	lowered := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		lowered = append(lowered, strings.ToLower(extension))
	}

	return ScanConfig{
		DangerousExtensions: NewStringSet(lowered...),
		DangerousMimeTypes:  NewStringSet(mimeTypes...),
		MaxScanSizeBytes:    maxScanSize,
		Signatures:          signatures,
		EnableScanning:      switches.EnableScanning,
		EnableAutoDelete:    switches.EnableAutoDelete,
		EnableNotifications: switches.EnableNotifications,
		EnableLogging:       switches.EnableLogging,
	}
}
