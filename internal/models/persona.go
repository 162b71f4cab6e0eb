package models

// PersonaId identifies one of the six fixed motivational voice profiles.
type PersonaId string

const (
	PersonaSunny   PersonaId = "sunny"
	PersonaDrQuinn PersonaId = "dr-quinn"
	PersonaPep     PersonaId = "pep"
	PersonaRico    PersonaId = "rico"
	PersonaFern    PersonaId = "fern"
	PersonaRusty   PersonaId = "rusty"
)

// PersonaIds lists every persona in canonical enumeration order. Tie-breaking
// in scoring and sorting always follows this order.
var PersonaIds = []PersonaId{
	PersonaSunny,
	PersonaDrQuinn,
	PersonaPep,
	PersonaRico,
	PersonaFern,
	PersonaRusty,
}

// Valid reports whether the id belongs to the fixed persona set.
func (p PersonaId) Valid() bool {
	for _, id := range PersonaIds {
		if id == p {
			return true
		}
	}
	return false
}

// Persona is the static profile for a motivational voice.
type Persona struct {
	ID              PersonaId `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Color           string    `json:"color"`
	Voice           string    `json:"voice"`
	ExampleMessages []string  `json:"example_messages"`
}

// PersonaScores accumulates raw quiz points per persona.
type PersonaScores map[PersonaId]int

// PersonaPercentages maps each persona to an integer percentage. Normalized
// weights sum to exactly 100; raw scoring output may deviate by one point
// either way.
type PersonaPercentages map[PersonaId]int

// NewPersonaScores returns a score map with every persona zeroed.
func NewPersonaScores() PersonaScores {
	s := make(PersonaScores, len(PersonaIds))
	for _, id := range PersonaIds {
		s[id] = 0
	}
	return s
}

// NewPersonaPercentages returns a percentage map with every persona zeroed.
func NewPersonaPercentages() PersonaPercentages {
	p := make(PersonaPercentages, len(PersonaIds))
	for _, id := range PersonaIds {
		p[id] = 0
	}
	return p
}
