package specs

import "fmt"

const promptTemplate = `Please provide detailed specifications for the car model "%s". Answer with one "Label: value" line per item, using exactly these labels:
Make: the manufacturer
Model: the model name
Year: the latest available model year
Engine: engine type
Horsepower: peak horsepower as a number
0-60: 0-60 mph acceleration time in seconds
Fuel Type: fuel type
MPG: combined MPG
Transmission: transmission type
Drivetrain: drivetrain (FWD, RWD, AWD or 4WD)

Please respond with accurate, current information. If the car model is not specific enough, use the most popular or recent variant.`

// BuildPrompt returns the instruction sent to the provider for model.
func BuildPrompt(model string) string {
	return fmt.Sprintf(promptTemplate, model)
}
