// Package vehiclenlp recognises vehicle make names and their common
// nicknames at the start of free-text queries.
package vehiclenlp

import (
	"regexp"
	"sort"
	"strings"
)

// knownMakes lists lower-cased make names and common nicknames.
var knownMakes = []string{
	"acura", "alfa romeo", "aston martin", "audi", "benz", "bmw", "buick",
	"cadillac", "chevrolet", "chevy", "chrysler", "dodge", "ferrari", "fiat",
	"ford", "genesis", "gmc", "honda", "hyundai", "infiniti", "jaguar", "jeep",
	"kia", "lamborghini", "land rover", "lexus", "lincoln", "lucid", "maserati",
	"mazda", "mclaren", "merc", "mercedes", "mercedes benz", "mercedes-benz",
	"mini", "mitsubishi", "nissan", "polestar", "porsche", "ram", "rivian",
	"rolls royce", "rolls-royce", "subaru", "tesla", "toyota", "volkswagen",
	"volvo", "vw",
}

// leadingMake matches a known name at the start of a term, longest first,
// followed by whitespace or the end of the term.
var leadingMake *regexp.Regexp

func init() {
	names := append([]string(nil), knownMakes...)
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for i, n := range names {
		names[i] = strings.ReplaceAll(regexp.QuoteMeta(n), " ", `\s+`)
	}
	leadingMake = regexp.MustCompile(`(?i)^(` + strings.Join(names, "|") + `)(?:\s+|$)`)
}

// SplitMake splits a leading known make from term. The make keeps the
// caller's spelling; rest is the remainder with surrounding space removed.
func SplitMake(term string) (make, rest string, ok bool) {
	term = strings.TrimSpace(term)
	loc := leadingMake.FindStringSubmatchIndex(term)
	if loc == nil {
		return "", term, false
	}
	return term[loc[2]:loc[3]], strings.TrimSpace(term[loc[1]:]), true
}
