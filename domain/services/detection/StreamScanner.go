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
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
)

const (
	DefaultChunkSize  = 8192
	DefaultWindowSize = 1024 // hex characters carried over between chunks
)

var ErrArtifactUnreadable = errors.New("artifact unreadable")

// StreamScanner searches the hex encoding of a file for signature patterns, one chunk at a
// time. Only the trailing windowSize hex characters survive between chunks, so a pattern that
// starts before that window and ends in the next chunk is not found.
type StreamScanner struct {
	store      out.ArtifactStore
	chunkSize  int
	windowSize int
	logger     logging.Logger
}

func NewStreamScanner(store out.ArtifactStore, chunkSize, windowSize int, logger logging.Logger) *StreamScanner {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	// Keep the window aligned to whole bytes
	windowSize -= windowSize % 2
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	return &StreamScanner{store: store, chunkSize: chunkSize, windowSize: windowSize, logger: logger}
}

func (s *StreamScanner) Scan(ctx context.Context, target entities.ScanTarget, signatures entities.SignatureStore) (entities.Verdict, bool, error) {
	reader, err := s.store.Open(ctx, target)
	if err != nil {
		return entities.Verdict{}, false, fmt.Errorf("%w: cannot open %s. %v", ErrArtifactUnreadable, target.ID, err)
	}
	defer reader.Close()

	verdict, found, err := s.scan(reader, signatures.All())
	if err != nil {
		return entities.Verdict{}, false, fmt.Errorf("%w: cannot read %s. %v", ErrArtifactUnreadable, target.ID, err)
	}

	return verdict, found, nil
}

func (s *StreamScanner) scan(reader io.Reader, signatures []entities.Signature) (entities.Verdict, bool, error) {
	if len(signatures) == 0 {
		s.logger.Debugw("No signatures loaded, skipping content scan")
		return entities.Verdict{}, false, nil
	}

	patterns := make([][]byte, len(signatures))
	for i, signature := range signatures {
		patterns[i] = []byte(signature.Pattern)
	}

	chunk := make([]byte, s.chunkSize)
	buffer := make([]byte, 0, s.windowSize+hex.EncodedLen(s.chunkSize))

	for {
		n, err := io.ReadFull(reader, chunk)
		if n > 0 {
			start := len(buffer)
			buffer = buffer[:start+hex.EncodedLen(n)]
			hex.Encode(buffer[start:], chunk[:n])

			for i, pattern := range patterns {
				if bytes.Contains(buffer, pattern) {
					return entities.VerdictSignatureMatch(signatures[i].Name), true, nil
				}
			}

			if len(buffer) > s.windowSize {
				buffer = buffer[:copy(buffer, buffer[len(buffer)-s.windowSize:])]
			}
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return entities.Verdict{}, false, nil
		}

		if err != nil {
			return entities.Verdict{}, false, err
		}
	}
}
