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
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestConvertNumberToHumanReadable(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{value: 0, expected: "0"},
		{value: 999, expected: "999"},
		{value: 1000, expected: "1.00k"},
		{value: 1530, expected: "1.53k"},
		{value: 2500000, expected: "2.50M"},
		{value: 7000000000, expected: "7.00G"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertNumberToHumanReadable(tt.value))
		})
	}
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2023, time.March, 4, 0, 0, 0, 0, time.UTC)

	parsed, err := ParseDate("", fallback)
	assert.NoError(t, err)
	assert.Equal(t, fallback, parsed)

	parsed, err = ParseDate("2023-01-31", fallback)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("31/01/2023", fallback)
	assert.Error(t, err)
}
