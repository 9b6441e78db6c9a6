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

package awsutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIsShared(t *testing.T) {
	var clients Clients

	first, err := clients.Session("us-east-1", "http://localhost:4566")
	require.NoError(t, err)

	second, err := clients.Session("sa-east-1", "")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "us-east-1", *first.Config.Region)
}

func TestStaticResolver(t *testing.T) {
	resolved, err := staticResolver("http://localhost:4566").EndpointFor("sqs", "us-east-1")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4566", resolved.URL)
	assert.Equal(t, "us-east-1", resolved.SigningRegion)
}
