package specs

import (
	"strings"

	"github.com/WessleyAI/autospecs/engine/domain"
)

// Catalog is a static table of known records keyed by lower-cased "make model".
type Catalog struct {
	entries map[string]domain.Spec
}

// NewCatalog indexes specs by name. Image locators are derived from make and
// model so catalog records match the ones the extractor would build.
func NewCatalog(specs ...domain.Spec) *Catalog {
	c := &Catalog{entries: make(map[string]domain.Spec, len(specs))}
	for _, s := range specs {
		s.ImageURL = domain.ImageURL(s.Make, s.Model)
		c.entries[strings.ToLower(s.Name())] = s
	}
	return c
}

// DefaultCatalog returns the built-in placeholder data.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		domain.Spec{
			Make: "Toyota", Model: "Camry", Year: 2024,
			EngineType: "2.5L 4-Cylinder", Horsepower: 203, ZeroToSixty: "8.4 seconds",
			FuelType: "Gasoline", MPG: "32 combined", Transmission: "8-Speed Automatic", Drivetrain: "FWD",
		},
		domain.Spec{
			Make: "Honda", Model: "Civic", Year: 2024,
			EngineType: "2.0L 4-Cylinder", Horsepower: 158, ZeroToSixty: "8.2 seconds",
			FuelType: "Gasoline", MPG: "35 combined", Transmission: "CVT", Drivetrain: "FWD",
		},
		domain.Spec{
			Make: "BMW", Model: "3 Series", Year: 2024,
			EngineType: "2.0L Turbo 4-Cylinder", Horsepower: 255, ZeroToSixty: "5.6 seconds",
			FuelType: "Gasoline", MPG: "30 combined", Transmission: "8-Speed Automatic", Drivetrain: "RWD",
		},
		domain.Spec{
			Make: "Ford", Model: "Mustang", Year: 2024,
			EngineType: "2.3L Turbo 4-Cylinder", Horsepower: 315, ZeroToSixty: "5.0 seconds",
			FuelType: "Gasoline", MPG: "25 combined", Transmission: "10-Speed Automatic", Drivetrain: "RWD",
		},
		domain.Spec{
			Make: "Tesla", Model: "Model 3", Year: 2024,
			EngineType: "Dual Motor Electric", Horsepower: 394, ZeroToSixty: "4.2 seconds",
			FuelType: "Electric", MPG: "131 MPGe combined", Transmission: "Single-Speed", Drivetrain: "AWD",
		},
	)
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup finds term by exact, case-insensitive name.
func (c *Catalog) Lookup(term string) (domain.Spec, bool) {
	s, ok := c.entries[strings.ToLower(term)]
	return s, ok
}

// Resolve returns the catalog record for term, or the unknown record.
func (c *Catalog) Resolve(term string) domain.Spec {
	if s, ok := c.Lookup(term); ok {
		return s
	}
	return UnknownSpec(term)
}

// UnknownSpec is the record for a model that was never actually looked up.
// Horsepower is 0, unlike the extractor's parse-failure default.
func UnknownSpec(term string) domain.Spec {
	return domain.Spec{
		Make:         domain.Unknown,
		Model:        term,
		Year:         domain.DefaultYear,
		EngineType:   domain.Unknown,
		Horsepower:   0,
		ZeroToSixty:  domain.Unknown,
		FuelType:     domain.Unknown,
		ImageURL:     domain.ImageURL(domain.Unknown, term),
		MPG:          domain.Unknown,
		Transmission: domain.Unknown,
		Drivetrain:   domain.Unknown,
	}
}
