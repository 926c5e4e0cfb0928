// Package nav tracks which screen of the mobile preview is showing and
// which bottom-navigation tab is highlighted. Transitions are an explicit
// table over (screen, event); pairs absent from the table leave the state
// unchanged.
package nav

// Screen is the top-level preview screen.
type Screen int

const (
	ScreenHero Screen = iota
	ScreenCities
	ScreenItinerary
)

func (s Screen) String() string {
	switch s {
	case ScreenHero:
		return "hero"
	case ScreenCities:
		return "cities"
	case ScreenItinerary:
		return "itinerary"
	}
	return "unknown"
}

// Tab is one of the bottom-navigation tabs. Values are the wire/display
// identifiers used by the customer app.
type Tab string

const (
	TabHome      Tab = "inicio"
	TabItinerary Tab = "roteiro"
	TabProducts  Tab = "produtos"
	TabBudget    Tab = "orcamento"
	TabAccount   Tab = "conta"
)

// Event is a user navigation action.
type Event int

const (
	EventViewDetails Event = iota
	EventViewItinerary
	EventBack
	EventNext
)

// State is the navigation state for one loaded trip. It lives for the
// lifetime of that trip and must be recreated (or Reset) whenever the
// active trip identifier changes.
type State struct {
	screen   Screen
	tab      Tab
	day      int
	dayCount int
}

// New returns the initial state: hero screen with the itinerary tab
// highlighted. The screen/tab mismatch is the shipped behavior of the
// customer app and is kept as-is.
func New(dayCount int) *State {
	s := &State{}
	s.Reset(dayCount)
	return s
}

// Reset returns to the initial state, typically on trip-identity change.
func (s *State) Reset(dayCount int) {
	if dayCount < 0 {
		dayCount = 0
	}
	s.screen = ScreenHero
	s.tab = TabItinerary
	s.day = 0
	s.dayCount = dayCount
}

func (s *State) Screen() Screen { return s.screen }
func (s *State) Tab() Tab       { return s.tab }

// Day is the current itinerary day index, always within
// [0, max(dayCount-1, 0)].
func (s *State) Day() int { return s.day }

type transitionKey struct {
	screen Screen
	event  Event
}

var transitions = map[transitionKey]func(*State){
	{ScreenHero, EventViewDetails}: func(s *State) {
		s.screen = ScreenCities
		s.tab = TabItinerary
	},
	{ScreenCities, EventBack}: func(s *State) {
		s.screen = ScreenHero
		s.tab = TabHome
	},
	{ScreenCities, EventViewItinerary}: func(s *State) {
		s.screen = ScreenItinerary
		s.day = 0
		s.tab = TabItinerary
	},
	{ScreenItinerary, EventBack}: func(s *State) {
		// Only the first day navigates back to the cities screen.
		if s.day == 0 {
			s.screen = ScreenCities
		}
	},
	{ScreenItinerary, EventNext}: func(s *State) {
		if s.day+1 < s.dayCount {
			s.day++
			return
		}
		// The last day closes the loop back to the hero screen.
		s.screen = ScreenHero
		s.day = 0
	},
}

// Apply runs one event through the transition table.
func (s *State) Apply(e Event) {
	if t, ok := transitions[transitionKey{s.screen, e}]; ok {
		t(s)
	}
}

// SelectTab highlights a bottom tab. Home and itinerary also force the
// corresponding screen; products, budget and account change only the
// highlight, since their destinations are not implemented downstream.
func (s *State) SelectTab(t Tab) {
	s.tab = t

	switch t {
	case TabHome:
		s.screen = ScreenHero
		s.day = 0
	case TabItinerary:
		s.screen = ScreenItinerary
	}
}
