package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"dsctravel/trip"
)

// GenerateItinerary asks the model for a day-by-day roteiro covering the
// whole trip period. The result feeds the itinerary screens, so every day
// must carry a landmark for the photo lookup; days the model leaves
// without one get a generic cityscape.
func (c *ExtractorClient) GenerateItinerary(data trip.TripData) ([]trip.ItineraryDay, error) {
	city := mainCity(data)

	content, err := c.complete(
		"Você é um especialista em roteiros de viagem. Crie roteiros detalhados, práticos e inspiradores. SEMPRE inclua o campo 'landmark' em cada dia. Retorne APENAS JSON array limpo, sem markdown.",
		buildItineraryPrompt(data, city),
		0.7, 3000, nil)
	if err != nil {
		return nil, err
	}

	return parseItineraryDays(content, city)
}

// mainCity is where the trip mostly happens: the first hotel's city.
func mainCity(data trip.TripData) string {
	if len(data.Hotels) > 0 && data.Hotels[0].City != "" {
		return data.Hotels[0].City
	}
	return "Buenos Aires"
}

func buildItineraryPrompt(data trip.TripData, city string) string {
	start, end := "", ""
	if data.Period != nil {
		start, end = data.Period.Start, data.Period.End
	}

	flightsJSON, _ := json.MarshalIndent(data.Flights, "", "  ")
	hotelsJSON, _ := json.MarshalIndent(data.Hotels, "", "  ")
	toursJSON, _ := json.MarshalIndent(data.Tours, "", "  ")

	transfer := "a-incluir"
	for _, t := range data.Tours {
		if strings.Contains(strings.ToLower(t.Name), "transfer") {
			transfer = "incluido"
			break
		}
	}

	return fmt.Sprintf(`Crie um roteiro dia-a-dia COMPLETO para esta viagem a %[1]s:

PERÍODO: %[2]s a %[3]s

VOOS:
%[4]s

HOTÉIS:
%[5]s

PASSEIOS INCLUÍDOS:
%[6]s

REGRAS OBRIGATÓRIAS:

1. CAMPO "landmark" É OBRIGATÓRIO EM CADA DIA:
   - O campo "landmark" define qual FOTO será exibida naquele dia
   - Use APENAS o nome do lugar, sem cidade ou país
   - Dia 1 (chegada): use "%[1]s cityscape"
   - Último dia (partida): use "%[1]s airport"

2. DIA DE CHEGADA (Dia 1):
   - Título: "Chegada a %[1]s"
   - Horário: Mostrar horário de chegada do voo
   - Descrição: 2-3 parágrafos sobre chegada, transfer, check-in e primeira noite
   - Transfer: "%[7]s"
   - Dica: Uma dica prática sobre o bairro do hotel

3. DIAS INTERMEDIÁRIOS (Dia 2 até penúltimo):
   - Título: Nome de atividade/bairro (ex: "City Tour", "Explorando Palermo")
   - landmark: Nome DO LOCAL específico visitado
   - Descrição: 2-3 parágrafos com sugestões de manhã, tarde e noite
   - VARIE os bairros/locais a cada dia
   - Se tem passeio incluído: mencionar "✓ [Nome do passeio] incluído"
   - Dica: Dica sobre restaurantes, horários, transporte

4. DIA DE PARTIDA (Último dia):
   - Título: "Retorno"
   - landmark: "%[1]s airport"
   - Horário: Mostrar horário do voo de volta
   - Descrição: Check-out, transfer ao aeroporto, despedida
   - Transfer: "%[7]s"
   - Dica: Dica sobre check-in antecipado

FORMATO JSON (retorne APENAS JSON array limpo, sem markdown):
[
  {"dia": 1, "data": "DD/MM", "titulo": "Chegada a %[1]s", "landmark": "%[1]s cityscape", "horario": "Chegada às HH:MM", "descricao": "...", "transfer": "%[7]s", "dica": "..."}
]

IMPORTANTE: CADA DIA DEVE TER UM LANDMARK DIFERENTE para garantir variedade visual nas fotos!`,
		city, start, end, flightsJSON, hotelsJSON, toursJSON, transfer)
}

// parseItineraryDays decodes the model's answer, tolerating a markdown
// code fence around the array.
func parseItineraryDays(content, city string) ([]trip.ItineraryDay, error) {
	text := strings.TrimSpace(content)
	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) >= 2 {
			text = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	var days []trip.ItineraryDay
	if err := json.Unmarshal([]byte(text), &days); err != nil {
		return nil, fmt.Errorf("AI returned invalid itinerary JSON: %v", err)
	}

	for i := range days {
		if days[i].Landmark == "" {
			days[i].Landmark = city + " cityscape"
		}
	}
	return days, nil
}
