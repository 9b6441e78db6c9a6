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
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestDetectMimeType(t *testing.T) {
	table := []struct {
		name      string
		fileBytes []byte
		expected  string
	}{
		{name: "png", fileBytes: []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, expected: "image/png"},
		{name: "gif89a", fileBytes: []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}, expected: "image/gif"},
		{name: "zipfile", fileBytes: []byte{0x50, 0x4B, 0x03, 0x04}, expected: "application/zip"},
		{name: "gzfile", fileBytes: []byte{0x1f, 0x8b}, expected: "application/gzip"},
		{name: "pdf", fileBytes: []byte("%PDF-1.7"), expected: "application/pdf"},
		{name: "plain text drops charset", fileBytes: []byte("just some notes"), expected: "text/plain"},
		{name: "empty file", fileBytes: []byte{}, expected: "application/octet-stream"},
	}

	for _, v := range table {
		v := v
		t.Run(v.name, func(t *testing.T) {
			actualType, err := DetectMimeType(bytes.NewReader(v.fileBytes))
			assert.NoError(t, err)
			assert.Equal(t, v.expected, actualType)
		})
	}
}

func TestDetectMimeTypeReadFailure(t *testing.T) {
	_, err := DetectMimeType(brokenReader{})
	assert.Error(t, err)
}

func TestStripParameters(t *testing.T) {
	assert.Equal(t, "text/html", stripParameters("text/html; charset=utf-8"))
	assert.Equal(t, "image/png", stripParameters("image/png"))
}
