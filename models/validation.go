package models

import (
	"regexp"
	"strings"
)

// ============================================================================
// Validation Engine
//
// Pure predicates over the current form values. Everything here is
// recomputed from scratch on every call — there is deliberately no
// caching or memoization, so derived validity can never drift from the
// text actually in the form. The UI re-derives all of this on every
// keystroke.
// ============================================================================

// emailRe is a permissive, non-RFC-complete heuristic: some
// non-whitespace-non-@ text, an @, more such text, a dot, more such
// text. Both the boolean check and the tri-state indicator share this
// one pattern.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Per-criterion password patterns, one per checklist row.
var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// passwordMinLength is the minimum acceptable password length.
const passwordMinLength = 8

// EmailValid reports whether email matches the address heuristic.
// Empty input is simply false — submit gating does not distinguish
// "untouched" from "malformed"; only the indicator does.
func EmailValid(email string) bool {
	return emailRe.MatchString(email)
}

// EmailState is the tri-state visual indicator for the email field.
type EmailState int

const (
	EmailNeutral EmailState = iota // untouched / empty
	EmailOK                        // matches the pattern
	EmailBad                       // non-empty and non-matching
)

// EmailIndicator derives the display state for the email field.
// Independent call site from EmailValid: the submit guard treats empty
// as false, while the field border stays neutral until the user has
// typed something.
func EmailIndicator(email string) EmailState {
	if email == "" {
		return EmailNeutral
	}
	if emailRe.MatchString(email) {
		return EmailOK
	}
	return EmailBad
}

// PasswordRuleStatus is the per-criterion breakdown behind the live
// password checklist. Flags are listed in display order.
type PasswordRuleStatus struct {
	MinLength bool // at least 8 characters
	Upper     bool // contains A-Z
	Lower     bool // contains a-z
	Special   bool // contains a non-alphanumeric character
	Digit     bool // contains 0-9
}

// EvaluatePassword derives the rule breakdown for the full password
// string. Each rule is evaluated independently; order affects only how
// the checklist renders.
func EvaluatePassword(password string) PasswordRuleStatus {
	return PasswordRuleStatus{
		MinLength: len(password) >= passwordMinLength,
		Upper:     upperRe.MatchString(password),
		Lower:     lowerRe.MatchString(password),
		Special:   specialRe.MatchString(password),
		Digit:     digitRe.MatchString(password),
	}
}

// AllMet reports whether every rule in the breakdown is satisfied.
func (s PasswordRuleStatus) AllMet() bool {
	return s.MinLength && s.Upper && s.Lower && s.Special && s.Digit
}

// UsernameValid requires a non-empty username after trimming.
// The stored value keeps its whitespace; only the check trims.
func UsernameValid(username string) bool {
	return strings.TrimSpace(username) != ""
}

// FormValid is the submittability gate: valid email, non-blank
// username, and all five password rules met. PasswordVisible never
// participates.
func FormValid(form FormInput) bool {
	return EmailValid(form.Email) &&
		UsernameValid(form.Username) &&
		EvaluatePassword(form.Password).AllMet()
}
