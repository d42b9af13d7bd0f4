package specs

import (
	"testing"

	"github.com/WessleyAI/autospecs/engine/domain"
)

func TestCatalogLookupCaseInsensitive(t *testing.T) {
	c := DefaultCatalog()
	var first domain.Spec
	for i, term := range []string{"Toyota Camry", "toyota camry", "TOYOTA CAMRY"} {
		s, ok := c.Lookup(term)
		if !ok {
			t.Fatalf("Lookup(%q) missed", term)
		}
		if i == 0 {
			first = s
			continue
		}
		if s != first {
			t.Fatalf("Lookup(%q) = %+v, want %+v", term, s, first)
		}
	}
	if first.Horsepower != 203 || first.ImageURL != "https://picsum.photos/400/300?random=ToyotaCamry" {
		t.Fatalf("unexpected Camry record: %+v", first)
	}
}

func TestCatalogExactMatchOnly(t *testing.T) {
	c := DefaultCatalog()
	if _, ok := c.Lookup("Toyota Camry LE"); ok {
		t.Fatal("expected miss for a longer name")
	}
	if _, ok := c.Lookup("Camry"); ok {
		t.Fatal("expected miss for a partial name")
	}

	s := c.Resolve("Toyota Camry LE")
	if s.Make != domain.Unknown || s.Model != "Toyota Camry LE" || s.Horsepower != 0 || s.Year != domain.DefaultYear {
		t.Fatalf("unexpected unknown record: %+v", s)
	}
}

func TestCatalogHondaCivic(t *testing.T) {
	s := DefaultCatalog().Resolve("Honda Civic")
	if s.Make != "Honda" || s.Model != "Civic" || s.Year != 2024 || s.Horsepower != 158 || s.Drivetrain != "FWD" {
		t.Fatalf("unexpected Civic record: %+v", s)
	}
}

func TestCatalogImageURLsAreDerived(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", c.Len())
	}
	for _, s := range c.entries {
		if s.ImageURL != domain.ImageURL(s.Make, s.Model) {
			t.Errorf("%s: image %q not derived from make+model", s.Name(), s.ImageURL)
		}
	}
}

func TestUnknownSpecFullyPopulated(t *testing.T) {
	s := UnknownSpec("Lada Niva")
	for name, v := range map[string]string{
		"make": s.Make, "model": s.Model, "engineType": s.EngineType,
		"zeroToSixty": s.ZeroToSixty, "fuelType": s.FuelType, "imageUrl": s.ImageURL,
		"mpg": s.MPG, "transmission": s.Transmission, "drivetrain": s.Drivetrain,
	} {
		if v == "" {
			t.Errorf("%s is empty", name)
		}
	}
	if s.ImageURL != domain.ImageURL(domain.Unknown, "Lada Niva") {
		t.Errorf("unexpected image: %s", s.ImageURL)
	}
}

func TestNewCatalogCustom(t *testing.T) {
	c := NewCatalog(domain.Spec{Make: "Lada", Model: "Niva", Year: 1977, Horsepower: 80})
	s, ok := c.Lookup("lada niva")
	if !ok || s.Horsepower != 80 || s.ImageURL == "" {
		t.Fatalf("unexpected custom lookup: %+v %v", s, ok)
	}
}
