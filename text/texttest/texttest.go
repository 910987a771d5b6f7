// Package texttest provides assertions over text.Text for tests.
package texttest

import (
	"regexp"

	"github.com/on-the-ground/tail_ive_go/scalar"
	"github.com/on-the-ground/tail_ive_go/text"
	"github.com/stretchr/testify/assert"
)

// Matcher checks a string and reports mismatches on t.
type Matcher func(t assert.TestingT, actual string) bool

// Equal matches a string equal to expected.
func Equal(expected string) Matcher {
	return func(t assert.TestingT, actual string) bool {
		return assert.Equal(t, expected, actual, "Text with %q", expected)
	}
}

// Contains matches a string containing sub.
func Contains(sub string) Matcher {
	return func(t assert.TestingT, actual string) bool {
		return assert.Contains(t, actual, sub, "Text containing %q", sub)
	}
}

// Regexp matches a string that rx matches.
func Regexp(rx *regexp.Regexp) Matcher {
	return func(t assert.TestingT, actual string) bool {
		return assert.Regexp(t, rx, actual, "Text matching %s", rx)
	}
}

// HasString asserts that txt reads as expected.
func HasString(t assert.TestingT, txt text.Text, expected string) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return Matches(t, txt, Equal(expected))
}

// Matches forces txt to a string and hands it to m. A text that fails to
// read fails the assertion with its fault.
func Matches(t assert.TestingT, txt text.Text, m Matcher) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	actual, err := scalar.Recover(text.Unchecked(txt).AsString)
	if !assert.NoError(t, err, "Text could not be read") {
		return false
	}
	return m(t, actual)
}
