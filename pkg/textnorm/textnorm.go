// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

// Package textnorm folds arbitrary Unicode strings into a canonical ASCII-ish
// search form.
//
// # Usage
//
// Bookmark titles and descriptions are folded once on write into a dedicated
// search column; incoming search queries are folded the same way at read
// time, so "Café" matches a search for "cafe" with a plain substring LIKE.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a string for substring search.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Collapses runs of whitespace into single spaces and trims the ends.
func Fold(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		// Fall back to the raw input: a search miss beats a write failure.
		result = s
	}

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Collapse whitespace
	return strings.Join(strings.Fields(result), " ")
}
