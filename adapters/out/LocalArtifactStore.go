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

package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/fileutils"
	"upload-sentry/logging"

	"github.com/spf13/afero"
)

const (
	defaultDirPermission  = 0755
	defaultFilePermission = 0640
)

// LocalArtifactStore keeps uploads below a single directory. Target IDs are slash separated
// paths relative to that directory, usually "<upload id>/<file name>".
type LocalArtifactStore struct {
	fs     afero.Fs
	logger logging.Logger
}

func NewLocalArtifactStore(base afero.Fs, rootDir string, logger logging.Logger) (*LocalArtifactStore, error) {
	if err := base.MkdirAll(rootDir, defaultDirPermission); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s. %w", rootDir, err)
	}

	// Enforcing base directory, because we don't want any file to escape the sandbox directory
	return &LocalArtifactStore{fs: afero.NewBasePathFs(base, rootDir), logger: logger}, nil
}

func (l *LocalArtifactStore) Open(_ context.Context, target entities.ScanTarget) (io.ReadCloser, error) {
	name, err := l.path(target.ID)
	if err != nil {
		return nil, err
	}

	file, err := l.fs.Open(name)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w. id: %s", out.ErrArtifactNotFound, target.ID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open artifact %s. %w", target.ID, err)
	}

	return file, nil
}

func (l *LocalArtifactStore) Put(_ context.Context, target entities.ScanTarget, reader io.Reader) error {
	name, err := l.path(target.ID)
	if err != nil {
		return err
	}

	if err := l.fs.MkdirAll(filepath.Dir(name), defaultDirPermission); err != nil {
		return fmt.Errorf("failed to create artifact directory. %w", err)
	}

	file, err := l.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaultFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create artifact %s. %w", target.ID, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write artifact %s. %w", target.ID, err)
	}

	return nil
}

func (l *LocalArtifactStore) Delete(_ context.Context, target entities.ScanTarget) error {
	name, err := l.path(target.ID)
	if err != nil {
		return err
	}

	exists, err := afero.Exists(l.fs, name)
	if err != nil {
		return fmt.Errorf("failed to stat artifact %s. %w", target.ID, err)
	}

	if !exists {
		return fmt.Errorf("%w. id: %s", out.ErrArtifactNotFound, target.ID)
	}

	if err := l.fs.Remove(name); err != nil {
		return fmt.Errorf("failed to remove artifact %s. %w", target.ID, err)
	}

	l.removeEmptyParent(name)

	return nil
}

func (l *LocalArtifactStore) List(_ context.Context) ([]entities.ScanTarget, error) {
	var targets []entities.ScanTarget

	err := afero.Walk(l.fs, string(filepath.Separator), func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		id := filepath.ToSlash(strings.TrimPrefix(name, string(filepath.Separator)))
		targets = append(targets, entities.NewScanTarget(id, info.Name(), uint64(info.Size()), l.mimeType(name)))

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts. %w", err)
	}

	return targets, nil
}

func (l *LocalArtifactStore) mimeType(name string) string {
	file, err := l.fs.Open(name)
	if err != nil {
		return ""
	}
	defer file.Close()

	mimeType, err := fileutils.DetectMimeType(file)
	if err != nil {
		l.logger.Debugw("Failed to detect mime type", "error", err, "file", name)
		return ""
	}

	return mimeType
}

func (l *LocalArtifactStore) removeEmptyParent(name string) {
	dir := filepath.Dir(name)
	if dir == string(filepath.Separator) || dir == "." {
		return
	}

	if empty, err := afero.IsEmpty(l.fs, dir); err == nil && empty {
		if err := l.fs.Remove(dir); err != nil {
			l.logger.Debugw("Failed to remove empty artifact directory", "error", err, "dir", dir)
		}
	}
}

func (l *LocalArtifactStore) path(id string) (string, error) {
	cleaned := filepath.Clean(string(filepath.Separator) + filepath.FromSlash(id))
	if id == "" || cleaned == string(filepath.Separator) || hasParentSegment(id) {
		return "", fmt.Errorf("%w. invalid id: %q", out.ErrArtifactNotFound, id)
	}

	return cleaned, nil
}

// hasParentSegment reports whether any path segment is exactly "..". Names such as "report..final.pdf" are allowed.
func hasParentSegment(id string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(id), "/") {
		if segment == ".." {
			return true
		}
	}

	return false
}
