// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package parser // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/parser"

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// objectRecord is the recognized key set of the single-object-per-line
// format. Unrecognized keys are ignored.
type objectRecord struct {
	Timestamp string         `mapstructure:"timestamp"`
	Level     string         `mapstructure:"level"`
	Action    string         `mapstructure:"action"`
	Message   string         `mapstructure:"message"`
	Details   map[string]any `mapstructure:"details"`
	Meta      map[string]any `mapstructure:"meta"`
}

func (p *Parser) parseObject(line string) (record, bool) {
	if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
		return record{}, false
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return record{}, false
	}

	var obj objectRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &obj,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return record{}, false
	}
	if err := decoder.Decode(raw); err != nil {
		p.logger.Debugw("object line with unusable fields", "error", err)
		return record{}, false
	}

	return record{
		timestamp: obj.Timestamp,
		level:     obj.Level,
		action:    obj.Action,
		message:   obj.Message,
		details:   obj.Details,
		meta:      obj.Meta,
	}, true
}
