// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package noise // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/noise"

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.uber.org/zap"
)

// probePatterns are substrings that mark a line as an automated probe,
// health check or static-asset request. The set is order-insensitive; it is
// product heuristics carried over from the panel's original log viewer.
var probePatterns = []string{
	"/.well-known/",
	"favicon.ico",
	"manifest.json",
	"service-worker.js",
	"sw.js",
	"robots.txt",
	"sitemap.xml",
	"security.txt",
	"/health",
	"/ping",
	"/status",
}

// staticAssetPrefixes are request paths whose GETs are uninteresting.
var staticAssetPrefixes = []string{"/css/", "/js/", "/images/", "/assets/"}

// Filter suppresses known-uninteresting lines. The same rule set runs at two
// checkpoints: on the raw line before parsing and on the extracted message
// after parsing, so noise survives neither as an unparsed probe request nor
// inside a structured message field.
type Filter struct {
	logger *zap.SugaredLogger
	rules  []compiledRule
}

type compiledRule struct {
	source  string
	program *vm.Program
}

// New creates a filter. Each extra rule is an expr expression over
// {line: string} that must evaluate to bool; a rule that does not compile is
// a configuration error.
func New(logger *zap.SugaredLogger, rules []string) (*Filter, error) {
	f := &Filter{logger: logger}
	for _, rule := range rules {
		program, err := expr.Compile(rule, expr.AsBool(), expr.Env(map[string]any{"line": ""}))
		if err != nil {
			return nil, fmt.Errorf("compiling noise rule '%s': %w", rule, err)
		}
		f.rules = append(f.rules, compiledRule{source: rule, program: program})
	}
	return f, nil
}

// Drop reports whether the given line or message should be suppressed.
func (f *Filter) Drop(text string) bool {
	lower := strings.ToLower(text)

	for _, pattern := range probePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	// Static-asset GETs, non-API HEADs and CORS preflights.
	if strings.Contains(text, "GET ") {
		for _, prefix := range staticAssetPrefixes {
			if strings.Contains(lower, prefix) {
				return true
			}
		}
	}
	if strings.Contains(text, "HEAD ") && !strings.Contains(lower, "/api/") {
		return true
	}
	if strings.Contains(text, "OPTIONS ") {
		return true
	}

	for _, rule := range f.rules {
		matches, err := vm.Run(rule.program, map[string]any{"line": text})
		if err != nil {
			// A failing rule never drops data.
			f.logger.Debugw("noise rule evaluation failed", "rule", rule.source, zap.Error(err))
			continue
		}
		if matches.(bool) {
			return true
		}
	}

	return false
}
