package domain

import (
	"strconv"
	"strings"
)

// maxRadiusReadings is the number of directional readings a radius field can carry.
const maxRadiusReadings = 4

// ReduceRadius folds a "|"-separated radius field into one scalar with the
// running-average fold: the first reading seeds the accumulator and each
// following reading r replaces it with (acc + r) / 2. An empty field reduces
// to 0. At most four readings are split off; anything after the third
// separator stays in the fourth reading and must still parse.
func ReduceRadius(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, nil
	}
	readings := strings.SplitN(field, "|", maxRadiusReadings)
	var acc float64
	for i, r := range readings {
		v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
		if err != nil {
			return 0, &ParseError{Field: "radius7", Value: field, Err: err}
		}
		if i == 0 {
			acc = v
			continue
		}
		acc = (acc + v) / 2
	}
	return acc, nil
}
