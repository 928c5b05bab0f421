// Package match holds the single primitive used to decide whether a
// normalized record field belongs to a normalized query key.
package match

import (
	"fmt"
	"strings"
)

// Policy names accepted by ByName.
const (
	PolicyContains = "contains"
	PolicyTokenSet = "token_set"
)

// Matcher reports whether field matches key. Both arguments are expected
// to be normalized already.
type Matcher interface {
	Match(field, key string) bool
}

// Func adapts a plain function to Matcher.
type Func func(field, key string) bool

// Match calls f.
func (f Func) Match(field, key string) bool { return f(field, key) }

// Contains matches when key is a substring of field. An empty key matches
// every field. Short keys over-match unrelated rows; that permissiveness is
// kept on purpose and callers must pass specific keys.
var Contains Matcher = Func(strings.Contains)

// TokenSet matches when every whitespace-separated token of key appears as
// a whole token in field. It is the stricter alternative to Contains.
var TokenSet Matcher = Func(func(field, key string) bool {
	want := strings.Fields(key)
	if len(want) == 0 {
		return true
	}
	have := make(map[string]struct{})
	for _, tok := range strings.Fields(field) {
		have[tok] = struct{}{}
	}
	for _, tok := range want {
		if _, ok := have[tok]; !ok {
			return false
		}
	}
	return true
})

// ByName returns the matcher for a configured policy name.
func ByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyContains:
		return Contains, nil
	case PolicyTokenSet:
		return TokenSet, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
