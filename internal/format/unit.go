package format

import "strings"

// InferUnitType guesses the standard unit from the unit words in a token:
// volume first, then weight, then counts. It is coarser than the unit
// returned by ComputeQuantity and can disagree with it on tokens that mix
// units: "pack 6 latas 33 cl" is 6 units for ComputeQuantity but liters here.
func InferUnitType(token string) (Unit, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	switch {
	case volumeUnitPattern.MatchString(token):
		return UnitLiters, true
	case weightUnitPattern.MatchString(token):
		return UnitKilograms, true
	case countUnitPattern.MatchString(token):
		return UnitUnits, true
	}
	return "", false
}
