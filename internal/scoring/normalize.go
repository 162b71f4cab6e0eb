package scoring

import "github.com/walkiapp/walki/internal/models"

// NormalizeWeights converts raw persona scores into a percentage distribution
// summing to exactly 100, using largest-remainder rounding. Leftover points
// after flooring go to the personas with the largest fractional shares, ties
// broken by enumeration order. A zero total yields an all-zero map; callers
// keep their previous weights in that case.
func NormalizeWeights(scores models.PersonaScores) models.PersonaPercentages {
	percentages := models.NewPersonaPercentages()

	total := 0
	for _, id := range models.PersonaIds {
		total += scores[id]
	}
	if total <= 0 {
		return percentages
	}

	remainders := make(map[models.PersonaId]int, len(models.PersonaIds))
	assigned := 0
	for _, id := range models.PersonaIds {
		exact := scores[id] * 100
		percentages[id] = exact / total
		remainders[id] = exact % total
		assigned += percentages[id]
	}

	for leftover := 100 - assigned; leftover > 0; leftover-- {
		best := models.PersonaIds[0]
		for _, id := range models.PersonaIds[1:] {
			if remainders[id] > remainders[best] {
				best = id
			}
		}
		percentages[best]++
		remainders[best] = -1
	}

	return percentages
}
