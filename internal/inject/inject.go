// Package inject renders notification templates by substituting computed
// context values into {{variable}} placeholders.
package inject

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/walkiapp/walki/internal/constants"
	"github.com/walkiapp/walki/internal/models"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// recognizedVariables lists every placeholder Render substitutes, in the
// order templates are expected to use them.
var recognizedVariables = []string{
	"streak_length",
	"steps_remaining",
	"steps_taken",
	"daily_goal",
	"day_of_week",
	"minutes_remaining",
	"calories_burned",
	"milestone_next",
	"streak_length_plus_3",
	"steps_yesterday",
	"neighbor_steps",
	"weather",
	"daily_goal_increased",
}

// Render substitutes every recognized {{variable}} in the template with its
// value from the context. Unrecognized placeholders are left untouched.
// steps_yesterday, neighbor_steps, and weather are fixed illustrative
// stand-ins, not live data.
func Render(template string, ctx models.NotificationContext) string {
	values := map[string]string{
		"streak_length":        strconv.Itoa(ctx.StreakLength),
		"steps_remaining":      strconv.Itoa(ctx.StepsRemaining),
		"steps_taken":          strconv.Itoa(ctx.StepsTaken),
		"daily_goal":           strconv.Itoa(ctx.DailyGoal),
		"day_of_week":          ctx.DayOfWeek,
		"minutes_remaining":    strconv.Itoa(minutesRemaining(ctx.StepsRemaining)),
		"calories_burned":      strconv.Itoa(caloriesBurned(ctx.StepsTaken)),
		"milestone_next":       strconv.Itoa(NextMilestone(ctx.StreakLength)),
		"streak_length_plus_3": strconv.Itoa(ctx.StreakLength + 3),
		"steps_yesterday":      "7500",
		"neighbor_steps":       "9200",
		"weather":              "cloudy",
		"daily_goal_increased": strconv.Itoa(int(math.Round(float64(ctx.DailyGoal) * 1.5))),
	}

	message := template
	for _, name := range recognizedVariables {
		message = strings.ReplaceAll(message, "{{"+name+"}}", values[name])
	}
	return message
}

// minutesRemaining estimates time to finish the remaining steps at an average
// walking pace.
func minutesRemaining(stepsRemaining int) int {
	return int(math.Ceil(float64(stepsRemaining) / constants.StepsPerMinute))
}

// caloriesBurned estimates calories from steps taken; the rate varies by
// weight but the demo uses a flat average.
func caloriesBurned(steps int) int {
	return int(math.Round(float64(steps) * constants.CaloriesPerStep))
}

// NextMilestone returns the first milestone strictly greater than the current
// streak, continuing in hundreds past the fixed ladder.
func NextMilestone(currentStreak int) int {
	for _, milestone := range constants.NextMilestoneTable {
		if currentStreak < milestone {
			return milestone
		}
	}
	return int(math.Ceil(float64(currentStreak)/100)) * 100
}

// ExtractVariables returns the distinct placeholder names appearing in the
// template, in first-occurrence order.
func ExtractVariables(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

// ValidateTemplate returns the placeholders in the template that Render does
// not recognize, order preserved, duplicates removed. An empty result means
// the template is fully renderable.
func ValidateTemplate(template string) []string {
	recognized := make(map[string]bool, len(recognizedVariables))
	for _, name := range recognizedVariables {
		recognized[name] = true
	}

	var unknown []string
	for _, name := range ExtractVariables(template) {
		if !recognized[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
