package selector

import (
	"math/rand"

	"github.com/walkiapp/walki/internal/models"
)

// Randomness hooks, replaceable in tests for deterministic selection.
var (
	randFloat64 = rand.Float64
	randIntn    = rand.Intn
)

// Select picks a motivational template for the given context. The pipeline is
// context filter (advisory, falls back to the whole library), recency
// exclusion (reverted if it empties the candidates), then roulette-wheel
// selection weighted by personaWeights[persona] x template weight. Selection
// never fails on a non-empty library; on a weight total of zero it picks
// uniformly.
func Select(
	library []models.NotificationTemplate,
	ctx models.NotificationContext,
	personaWeights models.PersonaPercentages,
	recentIDs []string,
) (models.NotificationTemplate, bool) {
	if len(library) == 0 {
		return models.NotificationTemplate{}, false
	}

	filtered := filterByContext(library, ctx)

	candidates := excludeRecent(filtered, recentIDs)
	if len(candidates) == 0 {
		candidates = filtered
	}

	if picked, ok := weightedPick(candidates, personaWeights); ok {
		return picked, true
	}

	// Fallback chain: first filtered candidate, then first library entry.
	if len(candidates) > 0 {
		return candidates[0], true
	}
	return library[0], true
}

// filterByContext keeps templates whose tags intersect the derived context tag
// set. The filter is advisory: no match at all returns the full library.
func filterByContext(library []models.NotificationTemplate, ctx models.NotificationContext) []models.NotificationTemplate {
	tags := deriveTags(ctx)
	tagSet := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tagSet[tag] = true
	}

	var filtered []models.NotificationTemplate
	for _, tmpl := range library {
		for _, tag := range tmpl.ContextTags {
			if tagSet[tag] {
				filtered = append(filtered, tmpl)
				break
			}
		}
	}

	if len(filtered) == 0 {
		return library
	}
	return filtered
}

func excludeRecent(templates []models.NotificationTemplate, recentIDs []string) []models.NotificationTemplate {
	if len(recentIDs) == 0 {
		return templates
	}
	recent := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		recent[id] = true
	}

	var kept []models.NotificationTemplate
	for _, tmpl := range templates {
		if !recent[tmpl.ID] {
			kept = append(kept, tmpl)
		}
	}
	return kept
}

// weightedPick performs roulette-wheel selection. Each candidate's weight is
// the user's persona percentage times the template's own weight; a zero total
// degrades to a uniform pick.
func weightedPick(templates []models.NotificationTemplate, personaWeights models.PersonaPercentages) (models.NotificationTemplate, bool) {
	if len(templates) == 0 {
		return models.NotificationTemplate{}, false
	}

	weights := make([]float64, len(templates))
	total := 0.0
	for i, tmpl := range templates {
		templateWeight := tmpl.Weight
		if templateWeight == 0 {
			templateWeight = 1
		}
		weights[i] = float64(personaWeights[tmpl.PersonaID]) * templateWeight
		total += weights[i]
	}

	if total == 0 {
		return templates[randIntn(len(templates))], true
	}

	remaining := randFloat64() * total
	for i, tmpl := range templates {
		remaining -= weights[i]
		if remaining <= 0 {
			return tmpl, true
		}
	}

	return templates[len(templates)-1], true
}
