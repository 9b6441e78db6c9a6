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

package detection

import (
	"strings"
	"upload-sentry/domain/entities"
)

type HeuristicClassifier struct{}

func NewHeuristicClassifier() HeuristicClassifier {
	return HeuristicClassifier{}
}

// Classify checks the extension first and the declared MIME type second.
// A false return means the target is inconclusive and needs a content scan.
func (HeuristicClassifier) Classify(target entities.ScanTarget, cfg entities.ScanConfig) (entities.Verdict, bool) {
	extension := strings.ToLower(target.Extension)
	if cfg.DangerousExtensions.Contains(extension) {
		return entities.VerdictDangerousExtension(extension), true
	}

	if cfg.DangerousMimeTypes.Contains(target.MimeType) {
		return entities.VerdictDangerousMime(target.MimeType), true
	}

	return entities.Verdict{}, false
}
