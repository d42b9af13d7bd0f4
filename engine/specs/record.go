package specs

import "github.com/WessleyAI/autospecs/engine/domain"

// BuildRecord assembles resolved fields into a record with its image locator.
func BuildRecord(f Fields) domain.Spec {
	return domain.Spec{
		Make:         f.Make,
		Model:        f.Model,
		Year:         f.Year,
		EngineType:   f.EngineType,
		Horsepower:   f.Horsepower,
		ZeroToSixty:  f.ZeroToSixty,
		FuelType:     f.FuelType,
		ImageURL:     domain.ImageURL(f.Make, f.Model),
		MPG:          f.MPG,
		Transmission: f.Transmission,
		Drivetrain:   f.Drivetrain,
	}
}
