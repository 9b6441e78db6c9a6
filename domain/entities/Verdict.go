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

import "fmt"

type VerdictKind int8

const (
	Clean VerdictKind = iota
	SkippedTooLarge
	DangerousExtension
	DangerousMime
	SignatureMatch
)

func (k VerdictKind) String() string {
	switch k {
	case Clean:
		return "clean"
	case SkippedTooLarge:
		return "skipped_too_large"
	case DangerousExtension:
		return "dangerous_extension"
	case DangerousMime:
		return "dangerous_mime"
	case SignatureMatch:
		return "signature_match"
	default:
		return "unknown"
	}
}

// Verdict is the single result of a scan. Malicious verdicts always carry the
// extension, MIME type or signature name that triggered them.
type Verdict struct {
	Kind   VerdictKind
	Reason string
}

func VerdictClean() Verdict {
	return Verdict{Kind: Clean}
}

func VerdictSkippedTooLarge() Verdict {
	return Verdict{Kind: SkippedTooLarge}
}

func VerdictDangerousExtension(extension string) Verdict {
	return Verdict{Kind: DangerousExtension, Reason: extension}
}

func VerdictDangerousMime(mimeType string) Verdict {
	return Verdict{Kind: DangerousMime, Reason: mimeType}
}

func VerdictSignatureMatch(name string) Verdict {
	return Verdict{Kind: SignatureMatch, Reason: name}
}

func (v Verdict) IsMalicious() bool {
	return v.Kind == DangerousExtension || v.Kind == DangerousMime || v.Kind == SignatureMatch
}

func (v Verdict) String() string {
	if v.Reason == "" {
		return v.Kind.String()
	}

	return fmt.Sprintf("%s(%s)", v.Kind, v.Reason)
}
