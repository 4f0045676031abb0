// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package aggregate // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/aggregate"

import (
	"time"

	"github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"
)

// MockSource is the source tag carried by placeholder entries.
const MockSource = "mock-data"

// DefaultMockSpacing is the interval between consecutive placeholder
// timestamps.
const DefaultMockSpacing = 5 * time.Minute

type mockSeed struct {
	level   string
	typ     string
	action  string
	message string
}

// mockSeeds is the fixed placeholder dataset, newest first. Callers detect
// synthetic data via the details.mockData marker.
var mockSeeds = []mockSeed{
	{"info", "system", "Server Start", "CloudPanel API server started and listening"},
	{"info", "api", "API Request", "GET /api/v1/sites returned 200 in 42ms"},
	{"info", "site", "Site Management", "Site example.com created with PHP 8.3 vhost"},
	{"warning", "security", "Security", "Basic auth enabled for admin panel"},
	{"info", "database", "Database", "Database backup completed for db-example"},
	{"error", "error", "Error", "Failed to reload nginx: invalid configuration"},
	{"info", "cli", "CloudPanel CLI", "clpctl site:add command executed"},
	{"info", "auth", "Authentication", "User session opened from 203.0.113.7"},
	{"warning", "system", "Warning", "Disk usage above 80 percent on /home"},
	{"info", "ssl", "SSL Certificate", "Certificate issued for example.com"},
	{"info", "user", "User Management", "User admin updated site permissions"},
	{"info", "api", "Success", "Scheduled job completed successfully"},
}

// MockEntries produces the fixed deterministic placeholder dataset shown when
// no real log data exists. Timestamps are spaced a fixed interval apart,
// newest first, anchored at now.
func MockEntries(now time.Time, spacing time.Duration) []entry.LogEntry {
	if spacing <= 0 {
		spacing = DefaultMockSpacing
	}

	entries := make([]entry.LogEntry, 0, len(mockSeeds))
	for i, seed := range mockSeeds {
		entries = append(entries, entry.LogEntry{
			ID:        entry.NewID(MockSource, 0, i),
			Timestamp: now.UTC().Add(-time.Duration(i) * spacing),
			Level:     seed.level,
			Action:    seed.action,
			Message:   seed.message,
			Type:      seed.typ,
			Source:    MockSource,
			Details:   map[string]any{"mockData": true},
			Priority:  0,
		})
	}
	return entries
}
