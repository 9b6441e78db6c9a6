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

package logging

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger.Debugw("debug message", "key", "value")
}

func TestNewDiscardLog(t *testing.T) {
	logger := NewDiscardLog()
	assert.NotPanics(t, func() { logger.Errorw("ignored", "error", "none") })
}
