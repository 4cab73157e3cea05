// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/al90012/primetrade-ai-assignment/models"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// Messages returned for failed checks.
const (
	MsgInvalidName     = "Name must be at least 2 characters"
	MsgInvalidEmail    = "Please provide a valid email"
	MsgInvalidPassword = "Password must be at least 6 characters"
	MsgPasswordTooLong = "Password must be at most 72 bytes"
	MsgTitleRequired   = "Title is required"
	MsgInvalidStatus   = "Status must be one of: pending, in_progress, completed"
)

// local@domain.tld, no whitespace, exactly one @.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidName reports whether name has at least MinNameLength characters
// after trimming.
func IsValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= MinNameLength
}

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// IsValidPassword reports whether password has at least MinPasswordLength
// characters. Whitespace counts.
func IsValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// IsPasswordWithinLimit reports whether password fits bcrypt's input
// limit. The limit is in bytes, not characters.
func IsPasswordWithinLimit(password string) bool {
	return len(password) <= MaxPasswordBytes
}

// IsNonBlank reports whether s contains anything but whitespace.
func IsNonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskStatus reports whether status is a known task status.
func IsValidTaskStatus(status string) bool {
	return models.TaskStatus(status).IsValid()
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
