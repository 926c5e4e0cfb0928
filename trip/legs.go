package trip

import (
	"fmt"
	"strings"
)

// SplitLegs partitions the flight list into outbound and return halves by
// position: the first ceil(n/2) legs are the outbound trip, the remainder
// the return. The extraction carries no directional field, so this
// heuristic is deliberate; an empty remainder means no return legs.
func SplitLegs(flights []Flight) (outbound, inbound []Flight) {
	half := (len(flights) + 1) / 2
	return flights[:half], flights[half:]
}

// TimelineStop is one airport on the flights deep-dive timeline. Arrival is
// empty on the first stop, Departure on the last; intermediate stops carry
// both and their gap is the connection time.
type TimelineStop struct {
	Code      string `json:"code"`
	City      string `json:"city"`
	Arrival   string `json:"arrival,omitempty"`
	Departure string `json:"departure,omitempty"`
}

// Connection returns the layover duration at this stop, or "" when it does
// not apply.
func (s TimelineStop) Connection() string {
	return ConnectionTime(s.Arrival, s.Departure)
}

// BuildTimeline folds consecutive legs into the airports they pass through.
func BuildTimeline(legs []Flight) []TimelineStop {
	if len(legs) == 0 {
		return nil
	}

	first := legs[0]
	city, code := splitAirport(first.Origin, "Origem")
	stops := []TimelineStop{{
		Code:      code,
		City:      city,
		Departure: first.DepartureTime,
	}}

	for i, leg := range legs {
		city, code := splitAirport(leg.Destination, "Destino")
		stop := TimelineStop{
			Code:    code,
			City:    city,
			Arrival: leg.ArrivalTime,
		}
		if i+1 < len(legs) {
			stop.Departure = legs[i+1].DepartureTime
		}
		stops = append(stops, stop)
	}

	return stops
}

// splitAirport parses display strings like "São Paulo (GRU)". Without
// parentheses the whole string doubles as the code.
func splitAirport(s, fallbackCity string) (city, code string) {
	city = strings.TrimSpace(s)
	code = s
	if i := strings.Index(s, "("); i >= 0 {
		city = strings.TrimSpace(s[:i])
		if j := strings.Index(s[i:], ")"); j > 0 {
			code = s[i+1 : i+j]
		}
	}
	if city == "" {
		city = fallbackCity
	}
	return city, code
}

// ConnectionTime renders the gap between an arrival and the next departure,
// both "HH:MM" clock strings. A negative gap is taken to wrap past
// midnight. Formats as "1h05m", "2h", "45m"; returns "" for a zero gap or
// unparseable input.
func ConnectionTime(arrival, departure string) string {
	arr, ok := parseClock(arrival)
	if !ok {
		return ""
	}
	dep, ok := parseClock(departure)
	if !ok {
		return ""
	}

	diff := dep - arr
	if diff < 0 {
		diff += 24 * 60
	}

	hours := diff / 60
	minutes := diff % 60
	if hours <= 0 && minutes <= 0 {
		return ""
	}

	out := ""
	if hours > 0 {
		out = fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 {
		out += fmt.Sprintf("%02dm", minutes)
	}
	return out
}

func parseClock(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	return h*60 + m, true
}
