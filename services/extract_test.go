package services

import (
	"strings"
	"testing"

	"dsctravel/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDocumentText_PlainTextPassthrough(t *testing.T) {
	text, err := ExtractDocumentText("orcamento.txt", []byte("Lima 3 noites"))
	require.NoError(t, err)
	assert.Equal(t, "Lima 3 noites", text)
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := buildExtractionPrompt("=== Arquivo: orcamento.pdf ===\nconteúdo", "Maria")

	assert.Contains(t, prompt, "=== Arquivo: orcamento.pdf ===")
	assert.Contains(t, prompt, `"cliente": "Maria"`)
	assert.Contains(t, prompt, "pacote_base")

	// Without a name the schema defaults to the generic client.
	anon := buildExtractionPrompt("x", "")
	assert.Contains(t, anon, `"cliente": "Cliente"`)
}

func TestMockTripData_RendersEndToEnd(t *testing.T) {
	data := MockTripData("Maria")

	summary := trip.Normalize(data)
	assert.Equal(t, "Maria", summary.ClientName)
	assert.Equal(t, "8 dias • 7 noites", summary.DurationText)
	assert.Equal(t, "15/02 - 22/02", summary.PeriodText)
	assert.True(t, strings.Contains(summary.DestinationsText, "Lima"))

	cities := trip.ExtractCities(data)
	require.Len(t, cities, 2)

	outbound, inbound := trip.SplitLegs(data.Flights)
	assert.Len(t, outbound, 2)
	assert.Len(t, inbound, 2)
}

func TestExtractTripData_RequiresConfiguration(t *testing.T) {
	c := &ExtractorClient{}
	_, err := c.ExtractTripData([]Document{{Name: "a.txt", Text: "x"}}, "")
	assert.Error(t, err)
}
