// Package domain defines the core record types, constants, and validation for
// the AutoSpecs search pipeline. It acts as the validation gate at the HTTP
// and NATS entry points.
package domain

import (
	"strings"
	"unicode"
)

// DefaultYear is the model year assumed when none can be resolved.
const DefaultYear = 2024

// Unknown is the placeholder value for attributes that were never looked up.
const Unknown = "Unknown"

// imageLocator is the placeholder image service template; the seed is appended.
const imageLocator = "https://picsum.photos/400/300?random="

// Spec is the immutable specification record for one car.
type Spec struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	EngineType   string `json:"engineType"`
	Horsepower   int    `json:"horsepower"`
	ZeroToSixty  string `json:"zeroToSixty"`
	FuelType     string `json:"fuelType"`
	ImageURL     string `json:"imageUrl"`
	MPG          string `json:"mpg,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Drivetrain   string `json:"drivetrain,omitempty"`
}

// Key returns the (make, model, year) identity used for de-duplication.
func (s Spec) Key() SpecKey {
	return SpecKey{Make: s.Make, Model: s.Model, Year: s.Year}
}

// Name returns "Make Model".
func (s Spec) Name() string {
	return s.Make + " " + s.Model
}

// SpecKey identifies a record inside a comparison.
type SpecKey struct {
	Make  string
	Model string
	Year  int
}

// ImageURL derives the placeholder image locator for a make/model pair.
// Everything but ASCII letters and digits is stripped from the seed.
func ImageURL(make, model string) string {
	return imageLocator + imageSeed(make+model)
}

func imageSeed(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return -1
		}
		return r
	}, s)
}

// SearchResult is the response envelope for a search: either Data or Error is set.
type SearchResult struct {
	Success bool   `json:"success"`
	Data    *Spec  `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Found wraps a record in a successful result.
func Found(s Spec) SearchResult {
	return SearchResult{Success: true, Data: &s}
}

// Failed builds an unsuccessful result with a short message.
func Failed(msg string) SearchResult {
	return SearchResult{Error: msg}
}
