// Package textutil collects small string helpers that sit around the case
// converters in package casing: joining, conditional building, regular
// expression based cleanup, and locale-aware title casing.
//
// Most helpers are total functions. The few that can fail (a nil formatter,
// an empty pattern, a pattern that does not compile) return errors from
// package caseerrors rather than panicking.
//
// Title casing is delegated to golang.org/x/text/cases:
//
//	textutil.ToTitleCase("hello WORLD", language.Und)   // "Hello World"
//	textutil.ToTitleCase("ijsselmeer", language.Dutch)  // "IJsselmeer"
package textutil
