package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary holds the aggregate figures shown in the reports view.
type Summary struct {
	TripCount     int     `json:"trip_count"`
	TotalDistance float64 `json:"total_distance"`
	VehicleCount  int     `json:"vehicle_count"`
	DriverCount   int     `json:"driver_count"`
}

// Summarize computes the summary of r. Distances that ParseDistance
// rejects contribute nothing; they are never reported as errors.
func Summarize(r Records) Summary {
	var total float64
	for i := range r.Trips {
		if d, ok := ParseDistance(r.Trips[i].Distance); ok {
			total += d
		}
	}
	return Summary{
		TripCount:     len(r.Trips),
		TotalDistance: total,
		VehicleCount:  len(r.Vehicles),
		DriverCount:   len(r.Drivers),
	}
}

// ParseDistance interprets raw distance text.
//
// Only ASCII digits with at most one decimal point are accepted, and at
// least one digit must be present: "12", "12.5", ".5" and "5." count while
// "12.5.6", "-3", "1e3", " 12" and "" do not. Signs, exponents and
// surrounding whitespace are rejected so a negative entry can never lower
// the total.
func ParseDistance(s string) (float64, bool) {
	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Only reachable on overflow of absurdly long inputs.
		return 0, false
	}
	return v, true
}

// FormatDistance renders a distance without trailing zeros.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// String renders the summary as the multi-line report text.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Trips: %d\n", s.TripCount)
	fmt.Fprintf(&b, "Total Distance: %s km\n", FormatDistance(s.TotalDistance))
	fmt.Fprintf(&b, "Vehicles Registered: %d\n", s.VehicleCount)
	fmt.Fprintf(&b, "Drivers Registered: %d\n", s.DriverCount)
	return b.String()
}
