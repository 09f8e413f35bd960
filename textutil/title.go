package textutil

import (
	"github.com/erraggy/casekit/casing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase title-cases s using the casing rules of tag. Use language.Und
// for language-neutral rules.
func ToTitleCase(s string, tag language.Tag) string {
	if s == "" {
		return s
	}
	// A Caser keeps state between calls and must not be shared.
	return cases.Title(tag).String(s)
}

// ToTitleCaseAsync runs ToTitleCase on its own goroutine.
func ToTitleCaseAsync(s string, tag language.Tag) *casing.Pending {
	return casing.Run(func() string { return ToTitleCase(s, tag) })
}
