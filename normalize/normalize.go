// Package normalize canonicalizes free-text form input before it is
// validated and stored.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text trims the input, collapses runs of whitespace to single spaces and
// capitalizes each word: first rune upper, remainder lower. Blank input
// yields the empty string. The transform is idempotent.
//
// Every form field goes through Text, including email and VAT number;
// those carry their own format checks on top.
func Text(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
