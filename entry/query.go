// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package entry // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"

const (
	// DefaultPage is the page returned when the caller does not ask for one.
	DefaultPage = 1

	// DefaultLimit is the page size used when the caller does not set one.
	DefaultLimit = 50
)

// QueryOptions selects and pages the merged log collection. Level, Type and
// Action are exact matches against the stored values; Search is a
// case-insensitive substring match against message, action and source.
type QueryOptions struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Level  string `json:"level,omitempty"`
	Type   string `json:"type,omitempty"`
	Action string `json:"action,omitempty"`
	Search string `json:"search,omitempty"`
}

// WithDefaults returns a copy with page and limit clamped to valid values.
func (o QueryOptions) WithDefaults() QueryOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	return o
}

// Pagination describes the position of one page within the filtered
// collection.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalLogs   int  `json:"totalLogs"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// PageResult is one page of the merged, sorted and filtered collection.
type PageResult struct {
	Logs       []LogEntry `json:"logs"`
	Pagination Pagination `json:"pagination"`
}

// SummaryResult is the read-only summary variant of PageResult: the same page
// plus per-level counts computed over the returned page only.
type SummaryResult struct {
	PageResult
	Stats map[string]int `json:"stats"`
}
