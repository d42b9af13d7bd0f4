package specs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/WessleyAI/autospecs/engine/domain"
)

// FieldRule extracts one attribute from free text: a label pattern whose
// first group is the raw value, a parser for that value, and the default
// used when either step fails.
type FieldRule[T any] struct {
	Name    string
	Pattern *regexp.Regexp
	Parse   func(string) (T, bool)
	Default T
}

// Match returns the parsed value if the pattern matched and parsing succeeded.
func (r FieldRule[T]) Match(text string) (T, bool) {
	var zero T
	m := r.Pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return zero, false
	}
	return r.Parse(m[1])
}

// Apply returns the matched value or the rule's default.
func (r FieldRule[T]) Apply(text string) T {
	if v, ok := r.Match(text); ok {
		return v
	}
	return r.Default
}

// WithDefault returns a copy of the rule with a different default.
func (r FieldRule[T]) WithDefault(d T) FieldRule[T] {
	r.Default = d
	return r
}

// labelPattern builds a case-insensitive "label: value" pattern. Markdown
// emphasis between the colon and the value is skipped.
func labelPattern(label, value string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `:[*_]*\s*` + value)
}

const (
	restOfLine = `([^\n]+)`
	digitRun   = `(\d+)`
)

func parseText(s string) (string, bool) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*_"))
	return s, s != ""
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func textRule(name, label, value, def string) FieldRule[string] {
	return FieldRule[string]{Name: name, Pattern: labelPattern(label, value), Parse: parseText, Default: def}
}

func intRule(name, label, value string, def int) FieldRule[int] {
	return FieldRule[int]{Name: name, Pattern: labelPattern(label, value), Parse: parseInt, Default: def}
}

// Extractor defaults for fields the answer did not mention.
const (
	DefaultEngine       = "V6"
	DefaultHorsepower   = 300
	DefaultZeroToSixty  = "6.0 seconds"
	DefaultFuel         = "Gasoline"
	DefaultMPG          = "25 combined"
	DefaultTransmission = "Automatic"
	DefaultDrivetrain   = "FWD"
)

var (
	makeRule         = textRule("make", `(?:Make|Brand)`, `(\w+)`, domain.Unknown)
	modelRule        = textRule("model", `Model`, restOfLine, "")
	yearRule         = intRule("year", `(?:Year|Model Year)`, `(\d{4})`, domain.DefaultYear)
	engineRule       = textRule("engineType", `Engine(?:\s+Type)?`, restOfLine, DefaultEngine)
	horsepowerRule   = intRule("horsepower", `(?:Horsepower|HP)`, digitRun, DefaultHorsepower)
	zeroToSixtyRule  = textRule("zeroToSixty", `0-?60(?:\s*mph)?(?:\s+acceleration)?(?:\s+time)?`, restOfLine, DefaultZeroToSixty)
	fuelRule         = textRule("fuelType", `Fuel(?:\s+Type)?`, restOfLine, DefaultFuel)
	mpgRule          = textRule("mpg", `MPG(?:\s*\(combined\))?`, restOfLine, DefaultMPG)
	transmissionRule = textRule("transmission", `Transmission`, restOfLine, DefaultTransmission)
	drivetrainRule   = textRule("drivetrain", `(?:Drivetrain|Drive)`, restOfLine, DefaultDrivetrain)
)

// Fields is the fully resolved attribute set for one answer.
type Fields struct {
	Make         string
	Model        string
	Year         int
	EngineType   string
	Horsepower   int
	ZeroToSixty  string
	FuelType     string
	MPG          string
	Transmission string
	Drivetrain   string
}

// Extract resolves every field of text independently. Make and model come
// from the query split when it has one, since the user's own words name the
// car more reliably than the generated answer. Extract never fails.
func Extract(text string, q Query) Fields {
	f := Fields{
		Make:         q.Make,
		Model:        q.Model,
		Year:         yearRule.Apply(text),
		EngineType:   engineRule.Apply(text),
		Horsepower:   horsepowerRule.Apply(text),
		ZeroToSixty:  zeroToSixtyRule.Apply(text),
		FuelType:     fuelRule.Apply(text),
		MPG:          mpgRule.Apply(text),
		Transmission: transmissionRule.Apply(text),
		Drivetrain:   drivetrainRule.Apply(text),
	}
	if !q.HasMake() {
		f.Make = makeRule.Apply(text)
		f.Model = modelRule.WithDefault(q.Term).Apply(text)
	}
	if f.Model == "" {
		f.Model = q.Term
	}
	return f
}
