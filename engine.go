// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package logview // import "github.com/josephgodwinkimani/cloudpanel-api-sub001"

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/josephgodwinkimani/cloudpanel-api-sub001/aggregate"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/noise"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/parser"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/source"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/timeparse"
)

// readerSource tags synthetic entries produced by the engine itself.
const readerSource = "log-reader"

// readerPriority sorts synthetic reader entries after every real source on
// timestamp ties.
const readerPriority = 999

// Engine is the log aggregation and normalization pipeline. It is stateless
// across queries: every call re-reads the configured sources, normalizes
// their lines and serves one page of the merged collection.
type Engine struct {
	cfg    Config
	logger *zap.SugaredLogger
	reader *source.Reader
	parser *parser.Parser
	now    func() time.Time

	generation atomic.Uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock. Tests use it to pin the fallback
// timestamp path, the sole source of nondeterminism between identical
// queries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine from a validated config.
func New(cfg Config, logger *zap.SugaredLogger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	noiseFilter, err := noise.New(logger, cfg.NoiseRules)
	if err != nil {
		return nil, err
	}

	e.reader = source.NewReader(logger)
	e.reader.Window = cfg.Window
	e.parser = parser.New(logger, noiseFilter, timeparse.New(e.now))
	return e, nil
}

// Query serves one page of the merged, sorted, filtered collection. It never
// panics out: an unexpected failure degrades to a single synthetic error
// entry with one-page pagination so callers always receive a well-formed
// result.
func (e *Engine) Query(ctx context.Context, opts entry.QueryOptions) (result *entry.PageResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorw("log aggregation failed", "panic", r)
			result = e.degraded(r)
		}
	}()

	entries := e.collect(ctx)
	if len(entries) == 0 {
		entries = aggregate.MockEntries(e.now(), e.cfg.MockSpacing)
	}

	aggregate.Sort(entries)
	return aggregate.Paginate(aggregate.Filter(entries, opts), opts)
}

// Summary is the read-only summary variant: the same page plus per-level
// counts over the returned page.
func (e *Engine) Summary(ctx context.Context, opts entry.QueryOptions) *entry.SummaryResult {
	page := e.Query(ctx, opts)
	return &entry.SummaryResult{
		PageResult: *page,
		Stats:      aggregate.Stats(page.Logs),
	}
}

// collect reads and normalizes every configured source. Per-source failures
// are isolated: they surface as one synthetic warning entry each and never
// abort the other sources.
func (e *Engine) collect(ctx context.Context) []entry.LogEntry {
	generation := e.generation.Add(1)

	var entries []entry.LogEntry
	var readErrs error
	failures := 0
	for _, desc := range e.cfg.Sources {
		if ctx.Err() != nil {
			break
		}

		lines, err := e.reader.Tail(desc)
		if err != nil {
			readErrs = multierr.Append(readErrs, err)
			entries = append(entries, e.readFailure(desc, generation, failures, err))
			failures++
			continue
		}

		count := 0
		for i, line := range lines {
			parsed, ok := e.parser.Parse(line, i, desc, generation)
			if !ok {
				continue
			}
			entries = append(entries, parsed)
			count++
			if count >= e.cfg.MaxEntries {
				break
			}
		}
	}

	if readErrs != nil {
		e.logger.Warnw("some sources could not be read", zap.Error(readErrs))
	}
	return entries
}

// readFailure builds the synthetic entry surfaced for an unreadable source.
func (e *Engine) readFailure(desc source.Descriptor, generation uint64, index int, err error) entry.LogEntry {
	return entry.LogEntry{
		ID:        entry.NewID(readerSource, generation, index),
		Timestamp: e.now().UTC(),
		Level:     "warning",
		Action:    "Log File Error",
		Message:   fmt.Sprintf("Could not read %s log: %v", desc.Name, err),
		Type:      desc.Type,
		Source:    readerSource,
		Priority:  readerPriority,
	}
}

// degraded is the whole-query failure result: one synthetic error entry and a
// degenerate one-page pagination.
func (e *Engine) degraded(cause any) *entry.PageResult {
	failure := entry.LogEntry{
		ID:        entry.NewID(readerSource, 0, 0),
		Timestamp: e.now().UTC(),
		Level:     entry.LevelError,
		Action:    "Log Aggregation Error",
		Message:   fmt.Sprintf("Log aggregation failed: %v", cause),
		Type:      "system",
		Source:    readerSource,
		Priority:  readerPriority,
	}
	return &entry.PageResult{
		Logs: []entry.LogEntry{failure},
		Pagination: entry.Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			TotalLogs:   1,
			Limit:       entry.DefaultLimit,
		},
	}
}
