// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jo@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"  jo@x.com  ", true},
		{"jo@x", false},
		{"jo.x.com", false},
		{"@x.com", false},
		{"jo@.com", false},
		{"jo @x.com", false},
		{"jo@@x.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jo"))
	assert.True(t, IsValidName("  Jo  "))
	assert.True(t, IsValidName("Юл"))
	assert.False(t, IsValidName("J"))
	assert.False(t, IsValidName(" J "))
	assert.False(t, IsValidName(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("secret"))
	assert.True(t, IsValidPassword("secret1"))
	assert.False(t, IsValidPassword("12345"))
	assert.False(t, IsValidPassword(""))
}

func TestIsPasswordWithinLimit(t *testing.T) {
	assert.True(t, IsPasswordWithinLimit(strings.Repeat("a", MaxPasswordBytes)))
	assert.False(t, IsPasswordWithinLimit(strings.Repeat("a", MaxPasswordBytes+1)))
	// 40 two-byte runes are 80 bytes
	assert.False(t, IsPasswordWithinLimit(strings.Repeat("ä", 40)))
	assert.True(t, IsPasswordWithinLimit(strings.Repeat("ä", 36)))
}

func TestIsNonBlank(t *testing.T) {
	assert.True(t, IsNonBlank("T1"))
	assert.False(t, IsNonBlank(""))
	assert.False(t, IsNonBlank(" \t\n"))
}

func TestIsValidTaskStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "completed"} {
		assert.True(t, IsValidTaskStatus(s), s)
	}
	assert.False(t, IsValidTaskStatus(""))
	assert.False(t, IsValidTaskStatus("done"))
	assert.False(t, IsValidTaskStatus("Pending"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "jo@x.com", NormalizeEmail("  Jo@X.com "))
	assert.Equal(t, "Jo", NormalizeName("  Jo "))
}
