// Package semester orders free-text semester labels.
package semester

import (
	"strings"

	"github.com/okian/sportsday/internal/domain/normalize"
)

// Unranked is returned for labels outside the roman numeral table.
const Unranked = 99

var roman = map[string]int{
	"i":    1,
	"ii":   2,
	"iii":  3,
	"iv":   4,
	"v":    5,
	"vi":   6,
	"vii":  7,
	"viii": 8,
	"ix":   9,
	"x":    10,
}

// Rank maps a semester label such as "Semester III" or "iv" to 1..10.
// Numeric, blank and malformed labels rank Unranked.
func Rank(label string) int {
	key := strings.TrimSpace(strings.ReplaceAll(normalize.Key(label), "semester", ""))
	if r, ok := roman[key]; ok {
		return r
	}
	return Unranked
}
