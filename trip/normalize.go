package trip

import (
	"fmt"
	"strings"
)

// Display fallbacks. The preview must always render something, so every
// derived field has a literal default.
const (
	FallbackClientName   = "Cliente"
	FallbackDestinations = "Destinos"
	FallbackDuration     = "8 dias • 7 noites"
	FallbackDate         = "Data"
)

// Summary is the fully-populated view of a trip: every field is ready to
// render, fallbacks already applied.
type Summary struct {
	ClientName       string `json:"client_name"`
	SummaryText      string `json:"summary_text"`
	DestinationsText string `json:"destinations_text"`
	DurationText     string `json:"duration_text"`
	PeriodText       string `json:"period_text"`
}

// Normalize derives the canonical display values from a raw payload. It is
// total over the optional input: missing fields resolve to fallbacks, never
// to an error.
func Normalize(data TripData) Summary {
	return Summary{
		ClientName:       clientName(data),
		SummaryText:      summaryText(data),
		DestinationsText: destinationsText(data),
		DurationText:     durationText(data),
		PeriodText:       periodText(data),
	}
}

func clientName(data TripData) string {
	if data.Client != "" {
		return data.Client
	}
	return FallbackClientName
}

// summaryText returns the first non-empty summary-ish field. An empty
// result is valid: the panel renders its own "no summary yet" placeholder.
func summaryText(data TripData) string {
	for _, s := range []string{data.Summary, data.Description, data.GeneralDescription} {
		if s != "" {
			return s
		}
	}
	return ""
}

func destinationsText(data TripData) string {
	var cities []string
	for _, h := range data.Hotels {
		if h.City != "" {
			cities = append(cities, h.City)
		}
	}
	if len(cities) == 0 {
		return FallbackDestinations
	}
	return strings.Join(cities, " • ")
}

// durationText sums hotel nights and renders "N+1 dias • N noites". Nights
// are assumed contiguous and non-overlapping across hotels; this is an
// approximation, not a calendar computation.
func durationText(data TripData) string {
	nights := 0
	for _, h := range data.Hotels {
		nights += h.Nights
	}
	if nights <= 0 {
		return FallbackDuration
	}
	return fmt.Sprintf("%d dias • %d noites", nights+1, nights)
}

func periodText(data TripData) string {
	start, end := FallbackDate, FallbackDate
	if data.Period != nil {
		if data.Period.Start != "" {
			start = data.Period.Start
		}
		if data.Period.End != "" {
			end = data.Period.End
		}
	}
	return start + " - " + end
}
