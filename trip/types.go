// Package trip holds the extraction data model and the pure derivations
// (normalized summary, included cities, flight legs, budget) the seller
// panel renders from it. Every field of the payload is optional: the AI
// extraction fills in what it found and omits the rest, so nothing here
// may assume a field is present.
package trip

// Trip is the full extraction result for one set of uploaded documents.
type Trip struct {
	TripID string   `json:"trip_id"`
	Status string   `json:"status"`
	Data   TripData `json:"data"`
}

// TripData is the loosely-typed bag produced by the extraction. Wire names
// follow the extraction schema (Portuguese).
type TripData struct {
	Client             string              `json:"cliente,omitempty"`
	Period             *Period             `json:"periodo,omitempty"`
	Flights            []Flight            `json:"voos,omitempty"`
	Hotels             []Hotel             `json:"hoteis,omitempty"`
	Tours              []Tour              `json:"passeios,omitempty"`
	BasePackage        *BasePackage        `json:"pacote_base,omitempty"`
	Summary            string              `json:"resumo,omitempty"`
	Description        string              `json:"descricao,omitempty"`
	GeneralDescription string              `json:"descricaoGeral,omitempty"`
	Itinerary          []ItineraryDay      `json:"roteiro,omitempty"`
	HeroImage          string              `json:"imagem_hero,omitempty"`
	CityImages         map[string][]string `json:"imagens_cidades,omitempty"`
	Countries          []string            `json:"paises,omitempty"`
}

// Flight is one leg. All fields are opaque display strings; times are
// "HH:MM" clock strings when the extraction managed to read them.
type Flight struct {
	Origin        string `json:"origem"`
	Destination   string `json:"destino"`
	Date          string `json:"data"`
	DepartureTime string `json:"horario_saida"`
	ArrivalTime   string `json:"horario_chegada"`
	Airline       string `json:"companhia,omitempty"`
}

type Hotel struct {
	City     string `json:"cidade"`
	Name     string `json:"nome"`
	Nights   int    `json:"noites"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	MealPlan string `json:"regime"`
}

type Tour struct {
	Name           string  `json:"nome"`
	PricePerPerson float64 `json:"valor_por_pessoa"`
	Included       bool    `json:"incluido"`
}

type BasePackage struct {
	Description string  `json:"descricao"`
	Value       float64 `json:"valor"`
}

type Period struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// ItineraryDay is one day of the generated day-by-day itinerary. Landmark
// names the place whose photo illustrates the day.
type ItineraryDay struct {
	Day         int    `json:"dia"`
	Date        string `json:"data"`
	Title       string `json:"titulo"`
	Landmark    string `json:"landmark,omitempty"`
	Schedule    string `json:"horario,omitempty"`
	Description string `json:"descricao"`
	Transfer    string `json:"transfer,omitempty"`
	Tip         string `json:"dica,omitempty"`
}
