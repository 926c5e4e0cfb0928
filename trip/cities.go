package trip

import "strings"

// City is a destination actually visited, with its catalog caption.
type City struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultCityDescription is used for cities outside the curated table.
const DefaultCityDescription = "Um destino incrível da sua viagem"

// Curated captions for the destinations the agency sells most.
var cityDescriptions = map[string]string{
	"Lima":           "Capital do Peru • Costa do Pacífico",
	"Cusco":          "Antiga capital Inca • 3.400m de altitude",
	"Machu Picchu":   "Maravilha do Mundo • Patrimônio da UNESCO",
	"Santiago":       "Capital do Chile • Vale Central",
	"Buenos Aires":   "Capital da Argentina • Patrimônio Cultural",
	"São Paulo":      "Maior cidade do Brasil • Hub econômico",
	"Rio de Janeiro": "Cidade Maravilhosa • Praias icônicas",
	"Brasília":       "Capital do Brasil • Arquitetura modernista",
	"Salvador":       "Primeira capital • Patrimônio Cultural",
}

// ExtractCities returns the cities where a hotel booking exists, in first-
// appearance order and without duplicates. Only hotels define an included
// city: a city touched by a connecting flight is not "included".
func ExtractCities(data TripData) []City {
	var cities []City
	seen := make(map[string]bool)

	for _, h := range data.Hotels {
		name := strings.TrimSpace(h.City)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cities = append(cities, City{
			Name:        name,
			Description: cityDescription(name),
		})
	}

	return cities
}

func cityDescription(name string) string {
	if d, ok := cityDescriptions[name]; ok {
		return d
	}
	return DefaultCityDescription
}
