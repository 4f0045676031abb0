// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package parser // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/parser"

import (
	"strings"

	"go.uber.org/zap"

	"github.com/josephgodwinkimani/cloudpanel-api-sub001/classify"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/noise"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/source"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/timeparse"
)

const (
	// minLineLength is the raw-line threshold below which a line is dropped
	// before any format is attempted.
	minLineLength = 10

	// minMessageLength is the post-parse threshold on the extracted message.
	minMessageLength = 5
)

// dropTokens are literal lines/messages that carry no information. They show
// up when a writer stringifies a bare value instead of a record.
var dropTokens = map[string]struct{}{
	"false":     {},
	"true":      {},
	"null":      {},
	"undefined": {},
	"{}":        {},
	"[]":        {},
}

// Parser converts raw source lines into normalized entries using a cascading
// format resolution: structured bracket format, then single-object lines,
// then a raw fallback. The first format that matches wins.
type Parser struct {
	logger *zap.SugaredLogger
	noise  *noise.Filter
	times  *timeparse.Normalizer
}

// New creates a parser.
func New(logger *zap.SugaredLogger, noiseFilter *noise.Filter, times *timeparse.Normalizer) *Parser {
	return &Parser{logger: logger, noise: noiseFilter, times: times}
}

// Parse converts one raw line into zero or one entries. lineIndex is the
// line's position within its source batch, most recent first; generation is
// the aggregation pass counter. The boolean reports whether an entry was
// produced — a dropped line is not an error.
func (p *Parser) Parse(line string, lineIndex int, desc source.Descriptor, generation uint64) (entry.LogEntry, bool) {
	trimmed := strings.TrimSpace(line)

	if _, drop := dropTokens[trimmed]; drop || len(trimmed) < minLineLength {
		return entry.LogEntry{}, false
	}
	if p.noise.Drop(trimmed) {
		return entry.LogEntry{}, false
	}

	rec, matched := p.parseBracket(trimmed)
	if !matched {
		rec, matched = p.parseObject(trimmed)
	}
	if matched {
		// Second drop checkpoint on the extracted message.
		msg := strings.TrimSpace(rec.message)
		if _, drop := dropTokens[msg]; drop || len(msg) < minMessageLength {
			return entry.LogEntry{}, false
		}
		if p.noise.Drop(msg) {
			return entry.LogEntry{}, false
		}
		rec.message = msg
	} else {
		rec = record{message: trimmed}
		if desc.Type == "error" {
			rec.level = entry.LevelError
		}
	}

	return p.normalize(rec, lineIndex, desc, generation), true
}

// record is the intermediate shape all three formats resolve to before
// normalization.
type record struct {
	timestamp string
	level     string
	action    string
	message   string
	requestID string
	userID    string
	details   map[string]any
	meta      map[string]any
}

func (p *Parser) normalize(rec record, lineIndex int, desc source.Descriptor, generation uint64) entry.LogEntry {
	level := entry.NormalizeLevel(rec.level)
	if level == "" {
		level = entry.LevelInfo
	}
	action := rec.action
	if action == "" {
		action = classify.Action(rec.message)
	}
	return entry.LogEntry{
		ID:        entry.NewID(desc.Name, generation, lineIndex),
		Timestamp: p.times.Normalize(rec.timestamp, lineIndex),
		Level:     level,
		Action:    action,
		Message:   rec.message,
		Type:      desc.Type,
		Source:    desc.Name,
		RequestID: rec.requestID,
		UserID:    rec.userID,
		Details:   rec.details,
		Meta:      rec.meta,
		Priority:  desc.Priority,
	}
}
