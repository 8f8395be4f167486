package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@campushub.app",
	}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), email)
	}
}

func TestUsernamePattern(t *testing.T) {
	valid := []string{"demo.student", "prof_chen", "abc", "user123"}
	for _, name := range valid {
		assert.True(t, CompiledPatterns.Username.MatchString(name), name)
	}

	invalid := []string{"ab", "has space", "bad-dash", "way.too.long.username.exceeding.thirty.chars"}
	for _, name := range invalid {
		assert.False(t, CompiledPatterns.Username.MatchString(name), name)
	}
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("hello").WithMinLength(2).WithMaxLength(10).Validate())
	assert.False(t, NewStringValidation("h").WithMinLength(2).Validate())
	assert.False(t, NewStringValidation("toolongvalue").WithMaxLength(5).Validate())
	assert.False(t, NewStringValidation("").Validate())

	// Optional empty values pass without further checks.
	assert.True(t, NewStringValidation("").WithRequired(false).WithMinLength(5).Validate())

	assert.True(t, NewStringValidation("demo.student").WithPattern(CompiledPatterns.Username).Validate())
	assert.False(t, NewStringValidation("bad name").WithPattern(CompiledPatterns.Username).Validate())
}
