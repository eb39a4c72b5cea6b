// Package validate provides syntax checks for caller-supplied credentials and addresses.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	appPasswordRe = regexp.MustCompile(`^[a-zA-Z0-9]{16}$`)
)

// EmailAddress reports whether s looks like a valid email address.
// Syntax only: no IDN handling, no length limits, no DNS lookups.
func EmailAddress(s string) bool {
	return emailRe.MatchString(s)
}

// AppPassword reports whether s is a valid Gmail App Password: exactly
// 16 alphanumeric characters once spaces are stripped. Google displays
// generated passwords in groups of four, so interior spaces are allowed.
func AppPassword(s string) bool {
	return appPasswordRe.MatchString(strings.ReplaceAll(s, " ", ""))
}
