// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package parser // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/parser"

import (
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

// bracketRegexp matches the structured bracket format:
//
//	[<timestamp>] <LEVEL> [<action>]? [REQ:<id>]? [USER:<id>]?: <message>
//
// All groups except timestamp, level and message are optional. Trailing
// "| Details: <json>" and "| Meta: <json>" blocks are peeled off the message
// afterwards.
var bracketRegexp = regexp.MustCompile(
	`^\[(?P<timestamp>[^\]]+)\]\s+(?P<level>[A-Za-z]+)` +
		`(?:\s+\[(?P<action>(?:[^\]]*))\])?` +
		`(?:\s+\[REQ:(?P<request>[^\]]+)\])?` +
		`(?:\s+\[USER:(?P<user>[^\]]+)\])?` +
		`\s*:\s*(?P<message>.*)$`)

func (p *Parser) parseBracket(line string) (record, bool) {
	m := bracketRegexp.FindStringSubmatch(line)
	if m == nil {
		return record{}, false
	}

	rec := record{}
	for i, name := range bracketRegexp.SubexpNames() {
		switch name {
		case "timestamp":
			rec.timestamp = m[i]
		case "level":
			rec.level = m[i]
		case "action":
			rec.action = strings.TrimSpace(m[i])
		case "request":
			rec.requestID = m[i]
		case "user":
			rec.userID = m[i]
		case "message":
			rec.message = m[i]
		}
	}

	// The action group is greedy, so a correlation id without an action lands
	// in it; rescue the literal prefixes.
	if strings.HasPrefix(rec.action, "REQ:") {
		rec.requestID, rec.action = strings.TrimPrefix(rec.action, "REQ:"), ""
	} else if strings.HasPrefix(rec.action, "USER:") {
		rec.userID, rec.action = strings.TrimPrefix(rec.action, "USER:"), ""
	}

	// Meta is always the final block, so peel it before Details.
	rec.message, rec.meta = splitBlock(rec.message, "| Meta:")
	rec.message, rec.details = splitBlock(rec.message, "| Details:")
	rec.message = strings.TrimSpace(rec.message)
	return rec, true
}

// splitBlock peels a trailing machine-readable block off the message. A block
// that fails to parse as a key-value document is kept under a "raw" key
// rather than discarded.
func splitBlock(message, marker string) (string, map[string]any) {
	idx := strings.Index(message, marker)
	if idx < 0 {
		return message, nil
	}
	text := strings.TrimSpace(message[idx+len(marker):])
	rest := strings.TrimSpace(message[:idx])

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return rest, map[string]any{"raw": text}
	}
	return rest, parsed
}
