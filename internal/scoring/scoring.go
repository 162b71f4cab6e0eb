package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/walkiapp/walki/internal/models"
)

// CalculateQuizResults maps the chosen answers onto per-persona point totals.
// Answers are matched by position: answers[i] is looked up among
// questions[i].Options, and a missing or unknown answer simply contributes no
// points. Percentages are rounded independently per persona, so their sum may
// drift from 100 by a point; callers tolerate ±1.
func CalculateQuizResults(questions []models.QuizQuestion, answers []string) models.QuizResults {
	scores := models.NewPersonaScores()

	for i, question := range questions {
		if i >= len(answers) {
			break
		}
		option, ok := findOption(question, answers[i])
		if !ok {
			continue
		}
		for personaID, points := range option.Scores {
			if personaID.Valid() {
				scores[personaID] += points
			}
		}
	}

	total := 0
	for _, id := range models.PersonaIds {
		total += scores[id]
	}

	percentages := models.NewPersonaPercentages()
	if total > 0 {
		for _, id := range models.PersonaIds {
			percentages[id] = int(math.Round(float64(scores[id]) / float64(total) * 100))
		}
	}

	return models.QuizResults{
		Scores:      scores,
		Percentages: percentages,
		TopPersona:  topPersona(scores),
		Timestamp:   time.Now(),
	}
}

// topPersona returns the persona with the strictly greatest score; ties fall
// to the earlier persona in enumeration order.
func topPersona(scores models.PersonaScores) models.PersonaId {
	top := models.PersonaIds[0]
	for _, id := range models.PersonaIds[1:] {
		if scores[id] > scores[top] {
			top = id
		}
	}
	return top
}

// TopPersonas returns up to count personas sorted by descending score, ties
// broken by enumeration order.
func TopPersonas(results models.QuizResults, count int) []models.PersonaId {
	sorted := make([]models.PersonaId, len(models.PersonaIds))
	copy(sorted, models.PersonaIds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return results.Scores[sorted[i]] > results.Scores[sorted[j]]
	})

	if count < 0 {
		count = 0
	}
	if count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}

// ValidateAnswers reports whether every question has an answer and each answer
// matches one of that question's option IDs. Used as the completeness gate
// before results may be finalized; scoring itself does not re-validate.
func ValidateAnswers(questions []models.QuizQuestion, answers []string) bool {
	if len(questions) != len(answers) {
		return false
	}
	for i, question := range questions {
		if _, ok := findOption(question, answers[i]); !ok {
			return false
		}
	}
	return true
}

func findOption(question models.QuizQuestion, optionID string) (models.QuizOption, bool) {
	for _, option := range question.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return models.QuizOption{}, false
}
