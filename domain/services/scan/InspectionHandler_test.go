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

package scan

import (
	"context"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

func TestInspectionHandler(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	target := entities.NewScanTarget("1/eicar.com", "eicar.com", 68, "text/plain")
	expected := entities.InspectionResult{
		Target:     target,
		Verdict:    entities.VerdictSignatureMatch("eicar"),
		Outcome:    entities.RemediationOutcome{Deleted: true},
		Remediated: true,
	}

	mockInspector := mocks.NewMockInspector(mockCtrl)
	mockInspector.EXPECT().Inspect(gomock.Any(), target).Return(expected).Times(1)

	output := make(chan *entities.InspectionResult, 1)
	handler := NewInspectionHandler(mockInspector, logging.NewDiscardLog())

	err := handler.Handle(context.Background(), &entities.InspectionRequest{Target: target, MessageID: "receipt"}, entities.NewOutputWriter(output))
	require.EqualError(t, err, "enforce cleanup")

	result := <-output
	assert.Equal(t, "receipt", result.MessageID)
	assert.Equal(t, expected.Verdict, result.Verdict)
	assert.Equal(t, expected.Outcome, result.Outcome)
	assert.Equal(t, "Inspection Handler", handler.Name())
}
