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

import "strings"

// ScanTarget is a read-only view of an uploaded file. The file itself is owned by an
// artifact store, the target only carries what is needed to classify and open it.
type ScanTarget struct {
	ID          string // Key of the artifact inside its store
	DisplayName string // Original file name, used for extension checks and notifications
	Size        uint64
	MimeType    string // Declared MIME type, compared case-sensitively
	Extension   string
}

func NewScanTarget(id, displayName string, size uint64, mimeType string) ScanTarget {
	return ScanTarget{
		ID:          id,
		DisplayName: displayName,
		Size:        size,
		MimeType:    mimeType,
		Extension:   ExtensionOf(displayName),
	}
}

// ExtensionOf returns whatever follows the last dot of the base name, or an empty string.
func ExtensionOf(name string) string {
	if index := strings.LastIndexAny(name, `/\`); index >= 0 {
		name = name[index+1:]
	}

	index := strings.LastIndex(name, ".")
	if index < 0 {
		return ""
	}

	return name[index+1:]
}
