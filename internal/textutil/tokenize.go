package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sentenceMark is the only punctuation rune that survives stripping.
const sentenceMark = '.'

const wordSeparator = " "

func isStrippable(r rune) bool {
	return r != sentenceMark && unicode.IsPunct(r)
}

// StripPunctuation removes every Unicode punctuation rune except the period,
// preserving all other runes in order. A token made only of punctuation
// strips to the empty string.
func StripPunctuation(token string) string {
	return strings.Map(func(r rune) rune {
		if isStrippable(r) {
			return -1
		}
		return r
	}, token)
}

// RemoveSpaceAndPunctuation deletes all whitespace and all punctuation other
// than the period. Removing runs or single runes is equivalent, so the result
// does not depend on how long the removed runs were.
func RemoveSpaceAndPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || isStrippable(r) {
			return -1
		}
		return r
	}, text)
}

// SplitWords splits text on the space character only. The result always has
// strings.Count(text, " ")+1 elements, including empty strings for adjacent
// or boundary spaces.
func SplitWords(text string) []string {
	return strings.Split(text, wordSeparator)
}

// SplitWordsNonEmpty splits text on the space character and drops the empty
// elements SplitWords would keep.
func SplitWordsNonEmpty(text string) []string {
	parts := strings.Split(text, wordSeparator)
	words := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}
		words = append(words, part)
	}
	return words
}

// Lower lower-cases text without language-specific rules.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// FoldKey returns the key used for case-insensitive comparison. Each rune is
// upper-cased on its own, so multi-rune expansions such as ß to SS never apply
// and "Straße" and "STRASSE" stay distinct.
func FoldKey(s string) string {
	return strings.Map(unicode.ToUpper, s)
}
