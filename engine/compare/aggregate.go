// Package compare builds side-by-side comparisons of specification records.
package compare

import (
	"math"
	"regexp"
	"strconv"

	"github.com/WessleyAI/autospecs/engine/domain"
)

// Summary holds the extremal records of a comparison.
type Summary struct {
	MostPowerful domain.Spec `json:"mostPowerful"`
	Newest       domain.Spec `json:"newest"`
	Fastest      domain.Spec `json:"fastest"`
	// FastestKnown is false when no record had a parseable 0-60 time, in
	// which case Fastest is just the first record.
	FastestKnown bool `json:"fastestKnown"`
	Count        int  `json:"count"`
}

var leadingNumber = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// ParseSeconds re-parses a 0-60 string such as "5.6 seconds" by its first
// numeric token. Strings without one rank as +Inf.
func ParseSeconds(s string) float64 {
	tok := leadingNumber.FindString(s)
	if tok == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// Summarize picks the most powerful, newest, and fastest records. Ties go to
// the earliest record. ok is false for an empty slice.
func Summarize(specs []domain.Spec) (sum Summary, ok bool) {
	if len(specs) == 0 {
		return Summary{}, false
	}

	power, newest, fastest := 0, 0, 0
	best := ParseSeconds(specs[0].ZeroToSixty)
	for i := 1; i < len(specs); i++ {
		s := specs[i]
		if s.Horsepower > specs[power].Horsepower {
			power = i
		}
		if s.Year > specs[newest].Year {
			newest = i
		}
		if t := ParseSeconds(s.ZeroToSixty); t < best {
			best, fastest = t, i
		}
	}

	return Summary{
		MostPowerful: specs[power],
		Newest:       specs[newest],
		Fastest:      specs[fastest],
		FastestKnown: !math.IsInf(best, 1),
		Count:        len(specs),
	}, true
}
