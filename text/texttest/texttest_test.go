package texttest_test

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/on-the-ground/tail_ive_go/text"
	"github.com/on-the-ground/tail_ive_go/text/texttest"
	"github.com/stretchr/testify/assert"
)

// recorder collects failures instead of failing the test.
type recorder struct {
	failures []string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestHasString(t *testing.T) {
	rec := &recorder{}
	assert.True(t, texttest.HasString(rec, text.Plain("abc"), "abc"))
	assert.Empty(t, rec.failures)

	assert.False(t, texttest.HasString(rec, text.Plain("abc"), "abd"))
	assert.Len(t, rec.failures, 1)
}

func TestMatches_NestedMatchers(t *testing.T) {
	rec := &recorder{}
	txt := text.Plain("tail of 5 elements")

	assert.True(t, texttest.Matches(rec, txt, texttest.Contains("of 5")))
	assert.True(t, texttest.Matches(rec, txt, texttest.Regexp(regexp.MustCompile(`\d+ elements$`))))
	assert.False(t, texttest.Matches(rec, txt, texttest.Contains("six")))
	assert.Len(t, rec.failures, 1)
}

func TestMatches_FailingTextFailsAssertion(t *testing.T) {
	rec := &recorder{}
	txt := text.Func(func() (string, error) {
		return "", errors.New("unreadable")
	})

	assert.False(t, texttest.HasString(rec, txt, ""))
	if assert.Len(t, rec.failures, 1) {
		assert.Contains(t, rec.failures[0], "unreadable")
	}
}
