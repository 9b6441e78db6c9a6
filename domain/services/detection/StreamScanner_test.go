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
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

const eicar = "X5O!P%@AP[4\\PZX54(P^)7CC)7}$EICAR-STANDARD-ANTIVIRUS-TEST-FILE!$H+H*"

type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

type failingReader struct {
	after int
	read  int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.read >= r.after {
		return 0, errors.New("disk on fire")
	}

	n := len(p)
	if n > r.after-r.read {
		n = r.after - r.read
	}
	r.read += n

	return n, nil
}

func signatureStore(t *testing.T, patterns map[string]string) entities.SignatureStore {
	t.Helper()

	store, err := entities.NewSignatureStore(patterns)
	require.NoError(t, err)

	return store
}

func withPatternAt(size, offset int, pattern []byte) []byte {
	content := make([]byte, size)
	copy(content[offset:], pattern)

	return content
}

func withReader(content string) io.Reader {
	return bytes.NewReader([]byte(content))
}

func hexOf(value string) string {
	return hex.EncodeToString([]byte(value))
}

func TestStreamScannerMatches(t *testing.T) {
	signatures := signatureStore(t, map[string]string{"EICAR": hexOf(eicar)})

	tests := []struct {
		name    string
		content []byte
		found   bool
	}{
		{
			name:    "signature at the start of a small file",
			content: []byte(eicar),
			found:   true,
		},
		{
			name:    "signature inside a later chunk",
			content: withPatternAt(DefaultChunkSize*3, DefaultChunkSize+100, []byte(eicar)),
			found:   true,
		},
		{
			name:    "signature straddling a chunk boundary",
			content: withPatternAt(DefaultChunkSize*2, DefaultChunkSize-20, []byte(eicar)),
			found:   true,
		},
		{
			name:    "clean content",
			content: bytes.Repeat([]byte("clean"), 5000),
		},
		{
			name:    "empty file",
			content: []byte{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			reader := &trackedReader{Reader: bytes.NewReader(tt.content)}
			target := entities.NewScanTarget("id", "file.bin", uint64(len(tt.content)), "application/octet-stream")

			mockStore := mocks.NewMockArtifactStore(mockCtrl)
			mockStore.EXPECT().Open(gomock.Any(), target).Return(reader, nil).Times(1)

			scanner := NewStreamScanner(mockStore, DefaultChunkSize, DefaultWindowSize, logging.NewDiscardLog())
			verdict, found, err := scanner.Scan(context.Background(), target, signatures)

			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, entities.VerdictSignatureMatch("EICAR"), verdict)
			}
			assert.True(t, reader.closed)
		})
	}
}

func TestStreamScannerWindow(t *testing.T) {
	// 8 byte signature, 16 byte chunks and a window holding the last 4 bytes of the previous chunk
	signature := "deadbeefcafebabe"
	signatures := signatureStore(t, map[string]string{"sample": signature})
	pattern, _ := hex.DecodeString(signature)

	tests := []struct {
		name   string
		offset int
		found  bool
	}{
		{name: "inside the first chunk", offset: 0, found: true},
		{name: "straddling within the retained window", offset: 12, found: true},
		{name: "starting before the retained window", offset: 10, found: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			content := withPatternAt(64, tt.offset, pattern)

			target := entities.NewScanTarget("id", "file.bin", uint64(len(content)), "")
			mockStore := mocks.NewMockArtifactStore(mockCtrl)
			mockStore.EXPECT().Open(gomock.Any(), target).Return(io.NopCloser(bytes.NewReader(content)), nil)

			scanner := NewStreamScanner(mockStore, 16, 8, logging.NewDiscardLog())
			_, found, err := scanner.Scan(context.Background(), target, signatures)

			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestStreamScannerIsDeterministic(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	signatures := signatureStore(t, map[string]string{"b-second": hexOf("EICAR"), "a-first": hexOf("STANDARD")})
	target := entities.NewScanTarget("id", "eicar.com.txt", uint64(len(eicar)), "text/plain")

	mockStore := mocks.NewMockArtifactStore(mockCtrl)
	mockStore.EXPECT().Open(gomock.Any(), target).DoAndReturn(func(context.Context, entities.ScanTarget) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader([]byte(eicar))), nil
	}).Times(3)

	scanner := NewStreamScanner(mockStore, DefaultChunkSize, DefaultWindowSize, logging.NewDiscardLog())

	for i := 0; i < 3; i++ {
		verdict, found, err := scanner.Scan(context.Background(), target, signatures)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, entities.VerdictSignatureMatch("a-first"), verdict)
	}
}

func TestStreamScannerMixedCasePattern(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	signatures := signatureStore(t, map[string]string{"upper": "DEADBEEF"})
	target := entities.NewScanTarget("id", "file", 4, "")

	mockStore := mocks.NewMockArtifactStore(mockCtrl)
	mockStore.EXPECT().Open(gomock.Any(), target).Return(io.NopCloser(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef})), nil)

	scanner := NewStreamScanner(mockStore, DefaultChunkSize, DefaultWindowSize, logging.NewDiscardLog())
	verdict, found, err := scanner.Scan(context.Background(), target, signatures)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "upper", verdict.Reason)
}

func TestStreamScannerErrors(t *testing.T) {
	signatures := signatureStore(t, map[string]string{"EICAR": hexOf(eicar)})
	target := entities.NewScanTarget("id", "file.bin", 100, "")

	t.Run("open failure", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockStore := mocks.NewMockArtifactStore(mockCtrl)
		mockStore.EXPECT().Open(gomock.Any(), target).Return(nil, errors.New("no such file"))

		scanner := NewStreamScanner(mockStore, DefaultChunkSize, DefaultWindowSize, logging.NewDiscardLog())
		_, found, err := scanner.Scan(context.Background(), target, signatures)

		assert.False(t, found)
		assert.ErrorIs(t, err, ErrArtifactUnreadable)
	})

	t.Run("read failure closes the stream", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		reader := &trackedReader{Reader: &failingReader{after: 32}}
		mockStore := mocks.NewMockArtifactStore(mockCtrl)
		mockStore.EXPECT().Open(gomock.Any(), target).Return(reader, nil)

		scanner := NewStreamScanner(mockStore, 16, 8, logging.NewDiscardLog())
		_, found, err := scanner.Scan(context.Background(), target, signatures)

		assert.False(t, found)
		assert.ErrorIs(t, err, ErrArtifactUnreadable)
		assert.True(t, reader.closed)
	})
}

func TestNewStreamScannerDefaults(t *testing.T) {
	scanner := NewStreamScanner(nil, 0, 0, logging.NewDiscardLog())
	assert.Equal(t, DefaultChunkSize, scanner.chunkSize)
	assert.Equal(t, DefaultWindowSize, scanner.windowSize)

	scanner = NewStreamScanner(nil, 16, 9, logging.NewDiscardLog())
	assert.Equal(t, 8, scanner.windowSize)
}
