// Package data holds the static library content of the demo: persona
// profiles, quiz questions, the notification template library, and the seeded
// demo calendar.
package data

import "github.com/walkiapp/walki/internal/models"

// Personas are the six fixed motivational voice profiles, in canonical order.
var Personas = []models.Persona{
	{
		ID:          models.PersonaSunny,
		Name:        "Sunny",
		Title:       "The Companion",
		Description: "Your supportive walking buddy who's always in your corner. Friendly, warm, and encouraging without being over-the-top. Feels like a text from a good friend.",
		Color:       "#F97316",
		Voice:       "Casual, supportive, personal",
		ExampleMessages: []string{
			"Hey! Just checking in—you've been crushing that streak. Want to keep it going together today? ☀️",
			"Day 15! I'm so proud of you. Let's make it 16 tomorrow, yeah?",
			"Rough day? A quick walk might help. I'll be with you the whole way.",
		},
	},
	{
		ID:          models.PersonaDrQuinn,
		Name:        "Dr. Quinn",
		Title:       "The Educator",
		Description: "Science-backed motivation for the data-driven. Shares health facts, research, and tangible benefits of walking. No fluff, just evidence.",
		Color:       "#3B82F6",
		Voice:       "Informative, authoritative, fact-based",
		ExampleMessages: []string{
			"Walking 7,000 steps daily reduces all-cause mortality by 50-70%. You're literally extending your life.",
			"Your 10-day streak has already improved your cardiovascular health, reduced inflammation, and boosted cognitive function.",
			"Studies show morning walks increase productivity by 23%. Time to invest in your day.",
		},
	},
	{
		ID:          models.PersonaPep,
		Name:        "Pep",
		Title:       "The Cheerleader",
		Description: "Pure enthusiasm and high-energy hype. Celebrates every win with genuine excitement. Impossible not to smile at her messages.",
		Color:       "#EC4899",
		Voice:       "Enthusiastic, energetic, uses emojis liberally",
		ExampleMessages: []string{
			"YESSS! Day 7!! You're UNSTOPPABLE! Let's GOOOO! 🎉🔥💪",
			"OMG you hit 10,000 steps?! I'M SO PROUD OF YOU! You're amazing!!!",
			"Good morning, superstar! ☀️ Today is YOUR day! Let's make it incredible! 🚀",
		},
	},
	{
		ID:          models.PersonaRico,
		Name:        "Rico",
		Title:       "The Challenger",
		Description: "Pushes you past your comfort zone with competitive fire. Direct, provocative, and unapologetically demanding. Thrives on daring you to do better.",
		Color:       "#EF4444",
		Voice:       "Direct, competitive, challenging",
		ExampleMessages: []string{
			"5,842 steps yesterday? That's cute. Bet you can't hit 8,000 today.",
			"You're really gonna let a 3-day streak be your peak? I expected more.",
			"Your neighbor walked 12K yesterday. You gonna take that? Didn't think so.",
		},
	},
	{
		ID:          models.PersonaFern,
		Name:        "Fern",
		Title:       "The Sage",
		Description: "Mindful wisdom for holistic wellness. Frames walking as meditation, self-care, and inner peace. Calm, grounding, and philosophical.",
		Color:       "#10B981",
		Voice:       "Calm, wise, reflective",
		ExampleMessages: []string{
			"Each step is a meditation. Your 8-day streak is a practice in presence and commitment.",
			"Walking isn't just movement—it's a gift you give your future self. Thank you for showing up today.",
			"The path of 1,000 miles begins with a single step. You're already 7 days into your journey.",
		},
	},
	{
		ID:          models.PersonaRusty,
		Name:        "Rusty",
		Title:       "The Pessimist",
		Description: "Reverse psychology master with dark humor. Expects you to fail, but secretly hopes you'll prove them wrong. Oddly motivating through sarcasm.",
		Color:       "#6B7280",
		Voice:       "Sarcastic, darkly humorous, pessimistic",
		ExampleMessages: []string{
			"Day 3 of your streak. Statistically you'll quit by Friday. But sure, surprise me.",
			"Oh look, it's raining. Perfect excuse to break your streak. I'm sure you'll find another one tomorrow.",
			"You actually walked today? Huh. Color me surprised. Don't get cocky though.",
		},
	},
}

// PersonaByID looks up a persona profile by id.
func PersonaByID(id models.PersonaId) (models.Persona, bool) {
	for _, p := range Personas {
		if p.ID == id {
			return p, true
		}
	}
	return models.Persona{}, false
}
