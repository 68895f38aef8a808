/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sigs.k8s.io/promo-service/api/promotion"
)

// FileLog stores outcomes as newline-delimited JSON in a single local
// file. Writes are O_APPEND and serialized under a mutex.
type FileLog struct {
	mu   sync.Mutex
	path string
}

var _ Log = &FileLog{}

// NewFileLog creates the parent directory if needed and returns a
// file-backed audit log.
func NewFileLog(path string) (*FileLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating audit log directory: %w", err)
	}
	return &FileLog{path: path}, nil
}

// Append writes one outcome as a single JSON line.
func (l *FileLog) Append(outcome *promotion.Outcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("encoding outcome %s: %w", outcome.ID, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(
		l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644,
	)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("appending outcome %s: %w", outcome.ID, err)
	}
	return nil
}

// Query re-reads the whole file and returns the outcomes matching the
// filter in append order.
func (l *FileLog) Query(filter Filter) ([]*promotion.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*promotion.Outcome{}, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	outcomes := []*promotion.Outcome{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		outcome := &promotion.Outcome{}
		if err := json.Unmarshal(line, outcome); err != nil {
			return nil, fmt.Errorf("decoding audit log line: %w", err)
		}
		if filter.Matches(outcome) {
			outcomes = append(outcomes, outcome)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	return outcomes, nil
}
