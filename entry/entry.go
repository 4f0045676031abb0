// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package entry // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"

import (
	"fmt"
	"time"
)

// LogEntry is a normalized representation of one source log line. Entries are
// recomputed on every query and never persisted.
type LogEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Action    string         `json:"action"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Source    string         `json:"source"`
	RequestID string         `json:"requestId,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
	Priority  int            `json:"priority"`
}

// NewID builds the synthetic entry identifier from the source tag, the
// aggregation generation counter and the line index within the batch.
// Identifiers are unique within one aggregation pass only.
func NewID(source string, generation uint64, lineIndex int) string {
	return fmt.Sprintf("%s-%d-%d", source, generation, lineIndex)
}

// AddDetail will add a key/value pair to the entry's details.
func (e *LogEntry) AddDetail(key string, value any) {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
}

// AddMeta will add a key/value pair to the entry's meta.
func (e *LogEntry) AddMeta(key string, value any) {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
}
