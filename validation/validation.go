// Package validation collects business-rule violations as an ordered list of
// user-facing messages. Checks never short-circuit: callers run every check
// and render whatever accumulated.
package validation

import (
	"regexp"
	"strings"
)

type Violations []string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v *Violations) Add(msg string) { *v = append(*v, msg) }

var (
	// local-part@domain with at least one label separator and no whitespace.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Belgian VAT: optional BE prefix, optional single leading zero, nine digits.
	vatPattern = regexp.MustCompile(`^(BE)?0?\d{9}$`)
)

// Required adds msg when value is empty or whitespace-only.
func Required(value, msg string, v *Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(msg)
	}
}

// Email adds msg when a non-empty value is not a plausible email address.
// An empty value is accepted: email is an optional attribute.
func Email(value, msg string, v *Violations) {
	if value == "" {
		return
	}
	if !emailPattern.MatchString(value) {
		v.Add(msg)
	}
}

// BelgianVAT strips internal spaces, uppercases and matches the BE format.
// An empty value is accepted.
func BelgianVAT(value, msg string, v *Violations) {
	vat := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if vat == "" {
		return
	}
	if !vatPattern.MatchString(vat) {
		v.Add(msg)
	}
}
