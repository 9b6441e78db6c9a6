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
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name      string
		extension string
	}{
		{name: "payload.EXE", extension: "EXE"},
		{name: "archive.tar.gz", extension: "gz"},
		{name: "Makefile", extension: ""},
		{name: ".bashrc", extension: "bashrc"},
		{name: "trailing.", extension: ""},
		{name: "dir.d/README", extension: ""},
		{name: `C:\Users\jane\run.bat`, extension: "bat"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.extension, ExtensionOf(tt.name))
		})
	}
}
