package models

import "time"

// QuizOption is one selectable answer. Scores is a partial map; personas
// absent from it contribute nothing when the option is chosen.
type QuizOption struct {
	ID     string            `json:"id"`
	Text   string            `json:"text"`
	Scores map[PersonaId]int `json:"scores"`
}

// QuizQuestion holds an ordered list of options.
type QuizQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

// QuizResults is the immutable outcome of a completed quiz. A retake replaces
// it wholesale.
type QuizResults struct {
	Scores      PersonaScores      `json:"scores"`
	Percentages PersonaPercentages `json:"percentages"`
	TopPersona  PersonaId          `json:"top_persona"`
	Timestamp   time.Time          `json:"timestamp"`
}

// QuizProgress is the persisted quiz-in-flight blob: current position, one
// nullable answer slot per question, and the last completed results snapshot.
type QuizProgress struct {
	CurrentQuestionIndex int          `json:"current_question_index"`
	Answers              []*string    `json:"answers"`
	IsComplete           bool         `json:"is_complete"`
	HasStarted           bool         `json:"has_started"`
	CompletedAt          string       `json:"completed_at,omitempty"` // RFC3339
	Results              *QuizResults `json:"results,omitempty"`
}
