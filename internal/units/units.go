// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	MM = "mm"
	CM = "cm"
	M  = "m"
	IN = "in"
	FT = "ft"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MM, CM, M, IN, FT}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mm, cm, m, in, ft"
}

// ConvertLength converts a length from metres to the target units.
// The pipeline computes in metres; conversion happens at the I/O edge.
func ConvertLength(lengthM float64, targetUnits string) float64 {
	switch targetUnits {
	case MM:
		return lengthM * 1000
	case CM:
		return lengthM * 100
	case IN:
		return lengthM * 39.3700787 // m to inches
	case FT:
		return lengthM * 3.2808399 // m to feet
	case M:
		return lengthM // no conversion needed
	default:
		return lengthM // default to metres if unknown unit
	}
}

// ToMetres converts a length in the given units back to metres.
func ToMetres(length float64, sourceUnits string) float64 {
	switch sourceUnits {
	case MM:
		return length / 1000
	case CM:
		return length / 100
	case IN:
		return length / 39.3700787
	case FT:
		return length / 3.2808399
	case M:
		return length
	default:
		return length
	}
}
