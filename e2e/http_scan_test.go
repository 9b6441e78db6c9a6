//go:build e2e

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

package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
)

func (suite *E2E) upload(ctx context.Context, filename string, data []byte) (int, adapterentities.UploadResponse) {
	body, contentType := common.PrepareNamedRequestBody(suite.T(), "file", filename, data)

	request, _ := http.NewRequestWithContext(ctx, "POST", baseURL+"/v1/files", body)
	request.Header.Add("Content-Type", contentType)
	request.Header.Add("X-User-ID", "u-300")
	request.Header.Add("X-User-Name", "Jane")

	httpResponse, err := http.DefaultClient.Do(request)
	suite.Require().NoError(err)
	defer httpResponse.Body.Close()

	var response adapterentities.UploadResponse
	suite.Require().NoError(json.NewDecoder(httpResponse.Body).Decode(&response))

	return httpResponse.StatusCode, response
}

func (suite *E2E) TestHTTPScan() {
	ctx := context.Background()

	status, response := suite.upload(ctx, "notes.txt", common.LoadFile(suite.T(), "notes.txt"))
	suite.Require().Equal(http.StatusOK, status)
	suite.Assert().False(response.Verdict.Malicious)
	suite.Assert().True(suite.objectExists(ctx, response.ID))

	status, response = suite.upload(ctx, "invoice.pdf", suite.eicar())
	suite.Require().Equal(http.StatusUnprocessableEntity, status)
	suite.Assert().True(response.Verdict.Malicious)
	suite.Assert().Equal(string(entities.ActionDeleted), response.Action)
	suite.Assert().False(suite.objectExists(ctx, response.ID))
}
