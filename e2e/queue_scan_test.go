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
	"time"
	adapterentities "upload-sentry/adapters/entities"
	"upload-sentry/common"
)

func (suite *E2E) TestQueueScan() {
	ctx := context.Background()

	suite.uploadObject(ctx, "reports/notes.txt", common.LoadFile(suite.T(), "notes.txt"), "owner-id=u-100&content-id=c-1")
	suite.uploadObject(ctx, "reports/invoice.pdf", suite.eicar(), "owner-id=u-200&content-id=c-2")

	suite.Require().Eventually(func() bool {
		return !suite.objectExists(ctx, "reports/invoice.pdf")
	}, 2*time.Minute, 5*time.Second)

	suite.Assert().True(suite.objectExists(ctx, "reports/notes.txt"))

	request, _ := http.NewRequestWithContext(ctx, "GET", baseURL+"/v1/statistics?period=day", http.NoBody)
	request.Header.Set("Accept", "application/json")
	client := &http.Client{}

	suite.Require().Eventually(func() bool {
		httpResponse, err := client.Do(request)
		if err != nil || httpResponse.StatusCode != http.StatusOK {
			return false
		}
		defer httpResponse.Body.Close()

		var obtained adapterentities.StatisticsResponse
		if err := json.NewDecoder(httpResponse.Body).Decode(&obtained); err != nil {
			return false
		}

		for _, statistics := range obtained.Result {
			if statistics.Malicious >= 1 && statistics.Deleted >= 1 {
				return true
			}
		}

		return false
	}, time.Minute, 5*time.Second)
}
