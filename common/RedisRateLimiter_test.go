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
	"testing"

	"github.com/go-redis/redis_rate/v9"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitWindows(t *testing.T) {
	tests := []struct {
		name     string
		config   RateLimitConfig
		expected []window
	}{
		{name: "no limits", config: RateLimitConfig{Key: "sms"}},
		{
			name:     "minute only",
			config:   RateLimitConfig{Minute: 4, Key: "sms"},
			expected: []window{{name: "minute", limit: redis_rate.PerMinute(4)}},
		},
		{
			name:     "minute before hour",
			config:   RateLimitConfig{Hour: 20, Minute: 4, Key: "sms"},
			expected: []window{{name: "minute", limit: redis_rate.PerMinute(4)}, {name: "hour", limit: redis_rate.PerHour(20)}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.windows())
		})
	}
}

func TestRateLimitKey(t *testing.T) {
	assert.Equal(t, "ratelimit:hour:sms", rateLimitKey("hour", "sms"))
}
