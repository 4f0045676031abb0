// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package aggregate // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/aggregate"

import (
	"sort"
	"strings"

	"github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"
)

// Sort orders the merged collection by its total order: timestamp descending,
// then source priority ascending, then id descending. Sorting happens before
// pagination so sequential pages against an unchanged snapshot never skip or
// duplicate an entry.
func Sort(entries []entry.LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID > b.ID
	})
}

// Filter applies the query's predicates conjunctively and returns the
// surviving entries in order.
func Filter(entries []entry.LogEntry, opts entry.QueryOptions) []entry.LogEntry {
	if opts.Level == "" && opts.Type == "" && opts.Action == "" && opts.Search == "" {
		return entries
	}

	search := strings.ToLower(opts.Search)
	filtered := make([]entry.LogEntry, 0, len(entries))
	for _, e := range entries {
		if opts.Level != "" && e.Level != entry.NormalizeLevel(opts.Level) {
			continue
		}
		if opts.Type != "" && e.Type != opts.Type {
			continue
		}
		if opts.Action != "" && e.Action != opts.Action {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func matchesSearch(e entry.LogEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.Message), search) ||
		strings.Contains(strings.ToLower(e.Action), search) ||
		strings.Contains(strings.ToLower(e.Source), search)
}

// Paginate slices one page out of the sorted, filtered collection and
// computes the pagination metadata. A page beyond range yields an empty slice
// with hasNext=false rather than an error.
func Paginate(entries []entry.LogEntry, opts entry.QueryOptions) *entry.PageResult {
	opts = opts.WithDefaults()

	total := len(entries)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	page := []entry.LogEntry{}
	if start < total {
		if end > total {
			end = total
		}
		page = entries[start:end]
	}

	p := entry.Pagination{
		CurrentPage: opts.Page,
		TotalPages:  totalPages,
		TotalLogs:   total,
		Limit:       opts.Limit,
		HasNext:     opts.Page < totalPages,
		HasPrev:     opts.Page > 1,
	}
	if p.HasNext {
		next := opts.Page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := opts.Page - 1
		p.PrevPage = &prev
	}

	return &entry.PageResult{Logs: page, Pagination: p}
}

// Stats counts the page's entries per level bucket. It feeds the read-only
// summary variant and covers the returned page only, not the whole
// collection.
func Stats(page []entry.LogEntry) map[string]int {
	stats := make(map[string]int, 4)
	for _, e := range page {
		stats[entry.LevelBucket(e.Level)]++
	}
	return stats
}
