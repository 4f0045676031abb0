// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package entry // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"

import "strings"

// Level tokens as stored on entries. The stored value is the source's own
// token lower-cased, so both "warn" and "warning" occur in real data; the
// alias table below only collapses them for stats bucketing.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelAliases = map[string]string{
	"warning": LevelWarn,
	"err":     LevelError,
	"fatal":   LevelError,
	"crit":    LevelError,
	"notice":  LevelInfo,
	"trace":   LevelDebug,
}

// NormalizeLevel lower-cases and trims a severity token. The token is stored
// as written by the source; aliases are not rewritten here.
func NormalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// LevelBucket maps a stored level token onto one of the canonical stat
// buckets, collapsing common aliases. Unrecognized tokens bucket as
// themselves.
func LevelBucket(level string) string {
	l := NormalizeLevel(level)
	if canonical, ok := levelAliases[l]; ok {
		return canonical
	}
	return l
}
