package services

import (
	"testing"

	"dsctravel/nav"
	"dsctravel/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItineraryPrompt(t *testing.T) {
	data := MockTripData("Maria")
	prompt := buildItineraryPrompt(data, mainCity(data))

	assert.Contains(t, prompt, "viagem a Lima")
	assert.Contains(t, prompt, "PERÍODO: 15/02 a 22/02")
	assert.Contains(t, prompt, `"landmark"`)
	assert.Contains(t, prompt, "Chegada a Lima")
	// The mock tours carry no transfer, so the prompt asks for one.
	assert.Contains(t, prompt, `Transfer: "a-incluir"`)
}

func TestBuildItineraryPrompt_TransferIncluded(t *testing.T) {
	data := trip.TripData{
		Hotels: []trip.Hotel{{City: "Cusco"}},
		Tours:  []trip.Tour{{Name: "Transfer aeroporto-hotel", Included: true}},
	}
	prompt := buildItineraryPrompt(data, mainCity(data))
	assert.Contains(t, prompt, `Transfer: "incluido"`)
}

func TestMainCity(t *testing.T) {
	assert.Equal(t, "Lima", mainCity(trip.TripData{Hotels: []trip.Hotel{{City: "Lima"}, {City: "Cusco"}}}))
	assert.Equal(t, "Buenos Aires", mainCity(trip.TripData{}))
}

func TestParseItineraryDays(t *testing.T) {
	raw := `[
		{"dia": 1, "data": "15/02", "titulo": "Chegada a Lima", "landmark": "Lima cityscape", "descricao": "..."},
		{"dia": 2, "data": "16/02", "titulo": "City Tour", "descricao": "..."}
	]`

	days, err := parseItineraryDays(raw, "Lima")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Chegada a Lima", days[0].Title)
	// A day the model left without a landmark gets the generic cityscape.
	assert.Equal(t, "Lima cityscape", days[1].Landmark)
}

func TestParseItineraryDays_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n[{\"dia\": 1, \"data\": \"15/02\", \"titulo\": \"Chegada\", \"descricao\": \"...\"}]\n```"

	days, err := parseItineraryDays(raw, "Lima")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
}

func TestParseItineraryDays_RejectsNonArray(t *testing.T) {
	_, err := parseItineraryDays(`{"dia": 1}`, "Lima")
	assert.Error(t, err)
}

func TestGenerateItinerary_RequiresConfiguration(t *testing.T) {
	c := &ExtractorClient{}
	_, err := c.GenerateItinerary(MockTripData(""))
	assert.Error(t, err)
}

// The simulated trip must exercise the whole day-by-day flow: one day per
// trip day, navigable end to end.
func TestMockTripData_ItineraryDrivesNavigation(t *testing.T) {
	data := MockTripData("")
	require.NotEmpty(t, data.Itinerary)
	assert.Len(t, data.Itinerary, 8) // 15/02 - 22/02

	for i, day := range data.Itinerary {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Landmark, "day %d has no landmark", day.Day)
		assert.NotEmpty(t, day.Description, "day %d has no description", day.Day)
	}

	s := nav.New(len(data.Itinerary))
	s.Apply(nav.EventViewDetails)
	s.Apply(nav.EventViewItinerary)
	for range data.Itinerary[1:] {
		s.Apply(nav.EventNext)
	}
	assert.Equal(t, nav.ScreenItinerary, s.Screen())
	assert.Equal(t, len(data.Itinerary)-1, s.Day())

	s.Apply(nav.EventNext)
	assert.Equal(t, nav.ScreenHero, s.Screen())
}
