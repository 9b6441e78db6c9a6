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
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptySignatureName    = errors.New("signature name is empty")
	ErrInvalidSignatureBytes = errors.New("signature pattern is not valid hex")
)

// Signature is a named byte pattern kept in its hex encoded form.
// Pattern is always lower-case so it can be compared against hex.Encode output.
type Signature struct {
	Name    string
	Pattern string
}

func NewSignature(name, pattern string) (Signature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Signature{}, ErrEmptySignatureName
	}

	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return Signature{}, fmt.Errorf("%w: %s is empty", ErrInvalidSignatureBytes, name)
	}

	if _, err := hex.DecodeString(pattern); err != nil {
		return Signature{}, fmt.Errorf("%w: %s. %v", ErrInvalidSignatureBytes, name, err)
	}

	return Signature{Name: name, Pattern: pattern}, nil
}

// SignatureStore is the read-only set of signatures used by a scan. Iteration order
// is by signature name, so the first match reported for a file is deterministic.
type SignatureStore struct {
	signatures []Signature
}

func NewSignatureStore(patterns map[string]string) (SignatureStore, error) {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	signatures := make([]Signature, 0, len(names))
	for _, name := range names {
		signature, err := NewSignature(name, patterns[name])
		if err != nil {
			return SignatureStore{}, err
		}

		signatures = append(signatures, signature)
	}

	return SignatureStore{signatures: signatures}, nil
}

func (s SignatureStore) All() []Signature {
	signatures := make([]Signature, len(s.signatures))
	copy(signatures, s.signatures)

	return signatures
}

func (s SignatureStore) Len() int {
	return len(s.signatures)
}

func (s SignatureStore) Patterns() map[string]string {
	patterns := make(map[string]string, len(s.signatures))
	for _, signature := range s.signatures {
		patterns[signature.Name] = signature.Pattern
	}

	return patterns
}
