// Package validator checks the shape of registration and payment fields
// against a fixed rule table. Rules are compiled once at init and never
// change at runtime; every field has exactly one definition.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names recognized by the rule table.
const (
	FieldFullName           = "full_name"
	FieldIDNumber           = "id_number"
	FieldAccountNumber      = "account_number"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldAmount             = "amount"
	FieldCurrency           = "currency"
	FieldProvider           = "provider"
	FieldPayeeName          = "payee_name"
	FieldPayeeAccountNumber = "payee_account_number"
	FieldSwiftCode          = "swift_code"
)

// ValidationError reports why a single field was rejected.
// It is a normal result, never a panic; the message is safe to surface.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// passwordSymbols is the fixed punctuation set a password must draw from.
const passwordSymbols = "!@#$%^&*()_-+=<>?{}[]~"

var (
	nameRegex         = regexp.MustCompile(`^[A-Za-z\s-]+$`)
	idNumberRegex     = regexp.MustCompile(`^\d{13}$`)
	accountRegex      = regexp.MustCompile(`^\d{9,12}$`)
	emailRegex        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	amountRegex       = regexp.MustCompile(`^(?:0|[1-9]\d*)(?:\.\d{1,2})?$`)
	swiftCodeRegex    = regexp.MustCompile(`^[A-Za-z0-9]{8,11}$`)
	nonZeroDigitRegex = regexp.MustCompile(`[1-9]`)
)

type rule struct {
	check  func(string) bool
	reason string
}

// rules maps each field name to its predicate. Built once, read-only after.
var rules = map[string]rule{
	FieldFullName:           {nameRegex.MatchString, "must contain only letters, spaces or hyphens"},
	FieldIDNumber:           {idNumberRegex.MatchString, "must be exactly 13 digits"},
	FieldAccountNumber:      {accountRegex.MatchString, "must be 9 to 12 digits"},
	FieldEmail:              {emailRegex.MatchString, "must be a valid email address"},
	FieldPassword:           {validPassword, "must be at least 8 characters with a lowercase, an uppercase, a digit and a symbol"},
	FieldAmount:             {validAmount, "must be a positive amount with at most 2 decimal places"},
	FieldCurrency:           {notBlank, "is required"},
	FieldProvider:           {notBlank, "is required"},
	FieldPayeeName:          {nameRegex.MatchString, "must contain only letters, spaces or hyphens"},
	FieldPayeeAccountNumber: {accountRegex.MatchString, "must be 9 to 12 digits"},
	FieldSwiftCode:          {swiftCodeRegex.MatchString, "must be 8 to 11 alphanumeric characters"},
}

// Field validates a single named field. Unknown field names are rejected.
func Field(name, value string) error {
	r, ok := rules[name]
	if !ok {
		return &ValidationError{Field: name, Reason: "is not a recognized field"}
	}
	if value == "" {
		return &ValidationError{Field: name, Reason: "is required"}
	}
	if !r.check(value) {
		return &ValidationError{Field: name, Reason: r.reason}
	}
	return nil
}

// Fields validates a set of (field, value) pairs and returns the first
// rejection in the given order.
func Fields(pairs ...[2]string) error {
	for _, p := range pairs {
		if err := Field(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// validPassword enforces the password policy procedurally; Go's regexp has
// no lookahead, so the character classes are counted in a single pass.
func validPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// validAmount accepts a positive decimal with up to two fraction digits.
// Zero in any spelling ("0", "0.0", "0.00") is rejected.
func validAmount(s string) bool {
	if !amountRegex.MatchString(s) {
		return false
	}
	return nonZeroDigitRegex.MatchString(s)
}
