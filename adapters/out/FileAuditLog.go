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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"

	"github.com/spf13/afero"
)

const (
	auditTimeFormat = "2006-01-02 15:04:05"

	maxAuditMessageLength = 4 * 1024
	maxAuditLineLength    = 64 * 1024
	truncatedSuffix       = "..."
)

var auditLinePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) \[(INFO|WARNING|ERROR)\] (.*)$`)

// FileAuditLog appends one line per entry, e.g. "2023-05-10 13:00:00 [WARNING] message".
// Once the file holds twice maxEntries lines it is compacted to the most recent maxEntries.
type FileAuditLog struct {
	mu         sync.Mutex
	fs         afero.Fs
	path       string
	maxEntries int64
	lines      int64
	logger     logging.Logger
}

func NewFileAuditLog(fs afero.Fs, path string, maxEntries int64, logger logging.Logger) (*FileAuditLog, error) {
	if err := fs.MkdirAll(filepath.Dir(path), defaultDirPermission); err != nil {
		return nil, fmt.Errorf("failed to create audit directory. %w", err)
	}

	a := &FileAuditLog{fs: fs, path: path, maxEntries: maxEntries, logger: logger}

	lines, err := a.readLines()
	if err != nil {
		return nil, err
	}

	a.lines = int64(len(lines))

	return a, nil
}

func (a *FileAuditLog) Append(entry entities.AuditEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	file, err := a.fs.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, defaultFilePermission)
	if err != nil {
		return fmt.Errorf("failed to open audit log. %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(formatAuditLine(entry) + "\n"); err != nil {
		return fmt.Errorf("failed to write audit log. %w", err)
	}

	a.lines++

	if a.maxEntries > 0 && a.lines >= 2*a.maxEntries {
		return a.compact()
	}

	return nil
}

// Recent returns up to limit entries, newest first. Lines that do not match the audit format are skipped.
func (a *FileAuditLog) Recent(limit int) ([]entities.AuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines, err := a.readLines()
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditEntry, 0, limit)
	for i := len(lines) - 1; i >= 0 && len(entries) < limit; i-- {
		entry, ok := parseAuditLine(lines[i])
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (a *FileAuditLog) compact() error {
	lines, err := a.readLines()
	if err != nil {
		return err
	}

	if int64(len(lines)) > a.maxEntries {
		lines = lines[int64(len(lines))-a.maxEntries:]
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := afero.WriteFile(a.fs, a.path, []byte(content), defaultFilePermission); err != nil {
		return fmt.Errorf("failed to compact audit log. %w", err)
	}

	a.lines = int64(len(lines))
	a.logger.Debugw("Audit log compacted", "path", a.path, "entries", a.lines)

	return nil
}

func (a *FileAuditLog) readLines() ([]string, error) {
	file, err := a.fs.Open(a.path)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open audit log. %w", err)
	}
	defer file.Close()

	var lines []string
	reader := bufio.NewReader(file)

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		switch {
		case len(line) > maxAuditLineLength:
			a.logger.Warnw("Skipping oversized audit line", "path", a.path, "length", len(line))
		case line != "":
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read audit log. %w", err)
		}
	}
}

func formatAuditLine(entry entities.AuditEntry) string {
	message := strings.NewReplacer("\r", " ", "\n", " ").Replace(entry.Message)
	if len(message) > maxAuditMessageLength {
		message = strings.ToValidUTF8(message[:maxAuditMessageLength], "") + truncatedSuffix
	}

	return fmt.Sprintf("%s [%s] %s", entry.Timestamp.UTC().Format(auditTimeFormat), entry.Level, message)
}

func parseAuditLine(line string) (entities.AuditEntry, bool) {
	parts := auditLinePattern.FindStringSubmatch(line)
	if parts == nil {
		return entities.AuditEntry{}, false
	}

	timestamp, err := time.ParseInLocation(auditTimeFormat, parts[1], time.UTC)
	if err != nil {
		return entities.AuditEntry{}, false
	}

	return entities.AuditEntry{Timestamp: timestamp, Level: entities.LogLevel(parts[2]), Message: parts[3]}, true
}
