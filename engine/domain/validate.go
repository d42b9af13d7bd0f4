package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxCompare is the largest number of models a single comparison accepts.
	MaxCompare = 4
	// MaxModelLen bounds a search term, in runes.
	MaxModelLen = 200
)

// ValidateModel trims a raw search term and rejects it if nothing is left
// or it is longer than MaxModelLen.
func ValidateModel(raw string) (string, error) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return "", NewValidationError("model", raw, ErrEmptyModel)
	}
	if utf8.RuneCountInString(term) > MaxModelLen {
		return "", NewValidationError("model", string([]rune(term)[:32])+"...", ErrModelTooLong)
	}
	return term, nil
}

// ValidateModels validates every term of a comparison request.
// Blank entries are an error, as is asking for more than MaxCompare models.
func ValidateModels(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, NewValidationError("model", "", ErrEmptyModel)
	}
	if len(raw) > MaxCompare {
		return nil, NewValidationError("model", fmt.Sprintf("%d", len(raw)), ErrTooManyModels)
	}
	terms := make([]string, 0, len(raw))
	for _, r := range raw {
		t, err := ValidateModel(r)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}
