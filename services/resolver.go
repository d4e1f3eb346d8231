package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/blogem/dues-ledger/models"
)

// NormalizeField maps a user-typed field label to the member's canonical
// column name. Matching is exact after trimming and case folding; the first
// header column that matches wins.
func NormalizeField(label string, member models.Member) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, key := range member.Keys {
		if strings.ToLower(key) == want {
			return key, true
		}
	}
	return "", false
}

// FindMember returns the first member, in storage order, whose lowercased
// "First Last" contains the query or whose first name equals it.
//
// Several members can match the same query (two members named Chris, or
// "lee" inside both "Chris Lee" and "Lee Park"). The earliest row silently
// wins and later matches are never considered. A blank query is a substring
// of every name, so it resolves to the first stored member.
func FindMember(members []models.Member, query string) (models.Member, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, member := range members {
		full := strings.ToLower(member.FullName())
		if strings.Contains(full, q) {
			return member, true
		}
		if q == strings.ToLower(strings.TrimSpace(member.FirstName())) {
			return member, true
		}
	}
	return models.Member{}, false
}

// availableFields lists the member's columns for "field not found" replies.
func availableFields(member models.Member) string {
	return strings.Join(member.Keys, ", ")
}

// displayName title-cases a name query for use in replies.
func displayName(name string) string {
	// A Caser keeps state between calls, so each reply gets its own.
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
