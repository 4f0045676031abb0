// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package classify // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/classify"

import "strings"

// DefaultAction is returned when no keyword group matches.
const DefaultAction = "System"

type keywordGroup struct {
	action   string
	keywords []string
}

// keywordGroups is order-significant: the first matching group wins. The
// keyword sets are product heuristics carried over from the panel's original
// log viewer and must not be reordered.
var keywordGroups = []keywordGroup{
	{"CloudPanel CLI", []string{"clpctl", "cli", "command", "tool"}},
	{"Site Management", []string{"site", "domain", "vhost"}},
	{"Database", []string{"database", "db-", "mysql"}},
	{"User Management", []string{"user", "auth", "login"}},
	{"SSL Certificate", []string{"ssl", "certificate", "tls"}},
	{"API Request", []string{"api", "request", "endpoint"}},
	{"Authentication", []string{"session", "login", "logout"}},
	{"Error", []string{"error", "failed", "failure", "❌"}},
	{"Success", []string{"success", "completed", "✅"}},
	{"Server Start", []string{"server", "start", "listening"}},
	{"Warning", []string{"warning", "⚠️"}},
	{"Security", []string{"security", "basic-auth"}},
}

// Action infers a category label from message content. It is only consulted
// when the source line carried no explicit action.
func Action(message string) string {
	m := strings.ToLower(message)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(m, keyword) {
				return group.action
			}
		}
	}
	return DefaultAction
}
