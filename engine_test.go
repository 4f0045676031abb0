// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package logview

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/josephgodwinkimani/cloudpanel-api-sub001/aggregate"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/internal/testutil"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/source"
)

var testClock = func() time.Time {
	return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
}

func writeSource(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func newTestEngine(t *testing.T, sources ...source.Descriptor) *Engine {
	t.Helper()
	cfg := NewConfig()
	cfg.Sources = sources
	e, err := New(cfg, testutil.Logger(t), WithClock(testClock))
	require.NoError(t, err)
	return e
}

func TestQueryMergesSources(t *testing.T) {
	dir := t.TempDir()
	appPath := writeSource(t, dir, "app.log",
		`[2024-01-15T10:30:45Z] INFO [Site Management]: Site example.com created`,
		`[2024-01-15T10:31:45Z] ERROR: database connection refused`,
	)
	secPath := writeSource(t, dir, "security.log",
		`[2024-01-15T10:32:45Z] WARN: failed login attempt from 203.0.113.9`,
	)

	e := newTestEngine(t,
		source.Descriptor{Name: "app", Path: appPath, Type: "application", Priority: 1},
		source.Descriptor{Name: "security", Path: secPath, Type: "security", Priority: 2},
	)

	result := e.Query(context.Background(), entry.QueryOptions{})
	require.Equal(t, 3, result.Pagination.TotalLogs)
	// Newest first across both sources.
	require.Equal(t, "failed login attempt from 203.0.113.9", result.Logs[0].Message)
	require.Equal(t, "database connection refused", result.Logs[1].Message)
	require.Equal(t, "Site example.com created", result.Logs[2].Message)
}

func TestQueryIdempotentOnUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.log",
		`[2024-01-15T10:30:45Z] INFO: first real message`,
		`[2024-01-15T10:31:45Z] WARN: second real message`,
	)
	e := newTestEngine(t, source.Descriptor{Name: "app", Path: path, Type: "application", Priority: 1})

	first := e.Query(context.Background(), entry.QueryOptions{})
	second := e.Query(context.Background(), entry.QueryOptions{})

	// Ids embed the generation counter; everything else must be identical.
	require.Len(t, second.Logs, len(first.Logs))
	for i := range first.Logs {
		a, b := first.Logs[i], second.Logs[i]
		a.ID, b.ID = "", ""
		require.Equal(t, a, b)
	}
}

func TestQueryFilterComposition(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.log",
		`[2024-01-15T10:30:45Z] ERROR: database connection refused`,
		`[2024-01-15T10:31:45Z] ERROR: nginx reload failed badly`,
		`[2024-01-15T10:32:45Z] INFO: database backup completed`,
	)
	e := newTestEngine(t, source.Descriptor{Name: "app", Path: path, Type: "application", Priority: 1})

	result := e.Query(context.Background(), entry.QueryOptions{Level: "error", Search: "database"})
	require.Equal(t, 1, result.Pagination.TotalLogs)
	require.Equal(t, "database connection refused", result.Logs[0].Message)
}

func TestQueryMockFallback(t *testing.T) {
	dir := t.TempDir()
	e := newTestEngine(t,
		source.Descriptor{Name: "app", Path: filepath.Join(dir, "absent-app.log"), Type: "application", Priority: 1},
		source.Descriptor{Name: "db", Path: filepath.Join(dir, "absent-db.log"), Type: "database", Priority: 2},
	)

	result := e.Query(context.Background(), entry.QueryOptions{})
	require.Equal(t, 12, result.Pagination.TotalLogs)
	for _, e := range result.Logs {
		require.Equal(t, aggregate.MockSource, e.Source)
		require.Equal(t, true, e.Details["mockData"])
	}
}

func TestQueryIsolatesReadFailures(t *testing.T) {
	dir := t.TempDir()
	goodPath := writeSource(t, dir, "app.log",
		`[2024-01-15T10:30:45Z] INFO: application line survives`,
	)

	e := newTestEngine(t,
		// A directory path opens but fails to read.
		source.Descriptor{Name: "broken", Path: t.TempDir(), Type: "system", Priority: 1},
		source.Descriptor{Name: "app", Path: goodPath, Type: "application", Priority: 2},
	)

	result := e.Query(context.Background(), entry.QueryOptions{})
	require.Equal(t, 2, result.Pagination.TotalLogs)

	var synthetic *entry.LogEntry
	for i := range result.Logs {
		if result.Logs[i].Source == "log-reader" {
			synthetic = &result.Logs[i]
		}
	}
	require.NotNil(t, synthetic)
	require.Equal(t, "warning", synthetic.Level)
	require.Equal(t, "Log File Error", synthetic.Action)
	require.Equal(t, 999, synthetic.Priority)
	require.Contains(t, synthetic.Message, "broken")
}

func TestQueryRespectsMaxEntries(t *testing.T) {
	dir := t.TempDir()
	lines := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		lines = append(lines, `[2024-01-15T10:30:45Z] INFO: repeated message payload`)
	}
	path := writeSource(t, dir, "app.log", lines...)

	cfg := NewConfig()
	cfg.MaxEntries = 25
	cfg.Sources = []source.Descriptor{{Name: "app", Path: path, Type: "application", Priority: 1}}
	e, err := New(cfg, testutil.Logger(t), WithClock(testClock))
	require.NoError(t, err)

	result := e.Query(context.Background(), entry.QueryOptions{Limit: 100})
	require.Equal(t, 25, result.Pagination.TotalLogs)
}

func TestQueryCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.log", `[2024-01-15T10:30:45Z] INFO: a real log line`)
	e := newTestEngine(t, source.Descriptor{Name: "app", Path: path, Type: "application", Priority: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No sources are read after cancellation, so the mock fallback serves.
	result := e.Query(ctx, entry.QueryOptions{})
	require.Equal(t, 12, result.Pagination.TotalLogs)
}

func TestQueryDegradesOnUnexpectedFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.log", `[2024-01-15T10:30:45Z] INFO: a real log line`)
	e := newTestEngine(t, source.Descriptor{Name: "app", Path: path, Type: "application", Priority: 1})
	e.parser = nil // force a pipeline panic

	result := e.Query(context.Background(), entry.QueryOptions{})
	require.Len(t, result.Logs, 1)
	require.Equal(t, "error", result.Logs[0].Level)
	require.Equal(t, "Log Aggregation Error", result.Logs[0].Action)
	require.Equal(t, 1, result.Pagination.TotalPages)
	require.Equal(t, 1, result.Pagination.TotalLogs)
}

func TestSummaryStats(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.log",
		`[2024-01-15T10:30:45Z] ERROR: database connection refused`,
		`[2024-01-15T10:31:45Z] WARNING: disk filling up quickly`,
		`[2024-01-15T10:32:45Z] INFO: scheduled backup completed`,
	)
	e := newTestEngine(t, source.Descriptor{Name: "app", Path: path, Type: "application", Priority: 1})

	result := e.Summary(context.Background(), entry.QueryOptions{})
	require.Equal(t, 3, result.Pagination.TotalLogs)
	require.Equal(t, map[string]int{"error": 1, "warn": 1, "info": 1}, result.Stats)
}
