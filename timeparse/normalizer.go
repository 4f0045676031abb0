// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package timeparse // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/timeparse"

import (
	"regexp"
	"strings"
	"time"
)

var (
	isoNoZoneRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`)
	sqlStyleRegexp  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2}(?:\.\d+)?)`)
	usStyleRegexp   = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4}) (\d{2}:\d{2}:\d{2})$`)
)

// genericLayouts are tried, in order, as the last resort before the
// deterministic fallback kicks in.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.UnixDate,
	time.ANSIC,
	"2006-01-02",
}

// Normalizer converts heterogeneous textual timestamps into canonical UTC
// instants. The zero clock means time.Now.
type Normalizer struct {
	now func() time.Time
}

// New creates a normalizer. A nil clock defaults to time.Now; tests inject a
// fixed clock to pin the fallback path.
func New(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Parse attempts the format cascade without the fallback. The second return
// value reports whether any rule produced a valid instant.
func (n *Normalizer) Parse(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	// ISO-8601 with an explicit UTC marker parses as-is.
	if strings.HasSuffix(s, "Z") {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.UTC(), true
		}
	}

	// ISO-8601 without a zone gets the UTC marker appended.
	if isoNoZoneRegexp.MatchString(s) {
		if t, err := time.Parse(time.RFC3339Nano, s+"Z"); err == nil {
			return t.UTC(), true
		}
	}

	// SQL style "YYYY-MM-DD HH:MM:SS[...]": swap the separator, assume UTC.
	if m := sqlStyleRegexp.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse(time.RFC3339Nano, m[1]+"T"+m[2]+"Z"); err == nil {
			return t.UTC(), true
		}
	}

	// US style "MM/DD/YYYY HH:MM:SS" rearranged into year-month-day order.
	if m := usStyleRegexp.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse(time.RFC3339Nano, m[3]+"-"+m[1]+"-"+m[2]+"T"+m[4]+"Z"); err == nil {
			return t.UTC(), true
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// Normalize runs the cascade and, when no rule matches, falls back to
// now − lineIndex seconds. lineIndex is the entry's position within its
// source batch (most recent first), so fallback entries from the same source
// keep their relative recency ordering.
func (n *Normalizer) Normalize(text string, lineIndex int) time.Time {
	if t, ok := n.Parse(text); ok {
		return t
	}
	return n.Fallback(lineIndex)
}

// Fallback returns the synthetic instant for an entry at the given batch
// position.
func (n *Normalizer) Fallback(lineIndex int) time.Time {
	return n.now().UTC().Add(-time.Duration(lineIndex) * time.Second)
}
