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

package fileutils

import (
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"io"
	"strings"
)

// Matches the amount of bytes inspected by the mimetype detectors
const maxHeaderBuffer = 3072

const defaultMimeType = "application/octet-stream"

// DetectMimeType sniffs the MIME type from the first bytes of the reader. Parameters such
// as the charset are dropped so the result can be compared with configured MIME types.
func DetectMimeType(reader io.Reader) (string, error) {
	head := make([]byte, maxHeaderBuffer)
	n, err := io.ReadFull(reader, head)

	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read header from file. Error: %w", err)
	}

	if n == 0 {
		return defaultMimeType, nil
	}

	return stripParameters(mimetype.Detect(head[:n]).String()), nil
}

func stripParameters(mimeType string) string {
	if index := strings.Index(mimeType, ";"); index >= 0 {
		return strings.TrimSpace(mimeType[:index])
	}

	return mimeType
}
