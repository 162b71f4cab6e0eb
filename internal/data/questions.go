package data

import "github.com/walkiapp/walki/internal/models"

type ps = map[models.PersonaId]int

// QuizQuestions is the fixed persona-matching quiz. Option score maps are
// partial; personas absent from a map get nothing when that option is chosen.
var QuizQuestions = []models.QuizQuestion{
	{
		ID:       "q1",
		Question: "It's 9 PM. You're 2,000 steps short of your daily goal. What gets you moving?",
		Options: []models.QuizOption{
			{ID: "q1a", Text: "A friend would be proud of me for finishing strong", Scores: ps{models.PersonaSunny: 2, models.PersonaPep: 1}},
			{ID: "q1b", Text: "Missing a day means higher risk of heart disease", Scores: ps{models.PersonaDrQuinn: 3}},
			{ID: "q1c", Text: "I refuse to break my 12-day streak", Scores: ps{models.PersonaRico: 2, models.PersonaFern: 1}},
			{ID: "q1d", Text: "A walk would actually help me decompress", Scores: ps{models.PersonaFern: 2, models.PersonaSunny: 1}},
		},
	},
	{
		ID:       "q2",
		Question: "You just completed 7 straight days of walking! What message would make you happiest?",
		Options: []models.QuizOption{
			{ID: "q2a", Text: "OMG YOU'RE INCREDIBLE! 🎉 I KNEW YOU COULD DO IT!", Scores: ps{models.PersonaPep: 3}},
			{ID: "q2b", Text: "7 days = 51% lower cardiovascular risk. Your body thanks you.", Scores: ps{models.PersonaDrQuinn: 3}},
			{ID: "q2c", Text: "Week one down. Think you can make it to 14? Prove it.", Scores: ps{models.PersonaRico: 3}},
			{ID: "q2d", Text: "Hey, that's awesome! So proud of you, friend.", Scores: ps{models.PersonaSunny: 3}},
		},
	},
	{
		ID:       "q3",
		Question: "Why do you want to walk more consistently?",
		Options: []models.QuizOption{
			{ID: "q3a", Text: "To feel energized and proud of myself", Scores: ps{models.PersonaPep: 2, models.PersonaSunny: 1}},
			{ID: "q3b", Text: "For specific health benefits I'm looking to achieve", Scores: ps{models.PersonaDrQuinn: 3}},
			{ID: "q3c", Text: "To prove I can stick with something", Scores: ps{models.PersonaRico: 2, models.PersonaRusty: 1}},
			{ID: "q3d", Text: "To clear my mind and reduce stress", Scores: ps{models.PersonaFern: 3}},
		},
	},
	{
		ID:       "q4",
		Question: "Which message style resonates most with you?",
		Options: []models.QuizOption{
			{ID: "q4a", Text: "Warm and supportive, like a good friend", Scores: ps{models.PersonaSunny: 3}},
			{ID: "q4b", Text: "Direct and fact-based, no fluff", Scores: ps{models.PersonaDrQuinn: 2, models.PersonaRico: 1}},
			{ID: "q4c", Text: "Playful and high-energy", Scores: ps{models.PersonaPep: 3}},
			{ID: "q4d", Text: "Calm and thoughtful", Scores: ps{models.PersonaFern: 3}},
		},
	},
	{
		ID:       "q5",
		Question: "You missed a day and broke your streak. What helps you restart?",
		Options: []models.QuizOption{
			{ID: "q5a", Text: "Encouragement that it's okay and I can start fresh", Scores: ps{models.PersonaSunny: 2, models.PersonaPep: 1}},
			{ID: "q5b", Text: "Reminder that consistency matters more than perfection", Scores: ps{models.PersonaFern: 2, models.PersonaDrQuinn: 1}},
			{ID: "q5c", Text: "A challenge to beat my old record", Scores: ps{models.PersonaRico: 3}},
			{ID: "q5d", Text: "Blunt honesty: 'You said you'd do this. Do it.'", Scores: ps{models.PersonaRusty: 2, models.PersonaRico: 1}},
		},
	},
	{
		ID:       "q6",
		Question: "How do you feel about dark humor / sarcasm?",
		Options: []models.QuizOption{
			{ID: "q6a", Text: "Love it! Makes things fun", Scores: ps{models.PersonaRusty: 3, models.PersonaRico: 1}},
			{ID: "q6b", Text: "Occasionally funny, but prefer positivity", Scores: ps{models.PersonaPep: 2, models.PersonaSunny: 1}},
			{ID: "q6c", Text: "Not really my thing", Scores: ps{models.PersonaDrQuinn: 2, models.PersonaFern: 1}},
			{ID: "q6d", Text: "Depends on my mood", Scores: ps{
				models.PersonaSunny: 1, models.PersonaDrQuinn: 1, models.PersonaPep: 1,
				models.PersonaRico: 1, models.PersonaFern: 1, models.PersonaRusty: 1,
			}},
		},
	},
	{
		ID:       "q7",
		Question: "If you had to walk with someone every day, who would you pick?",
		Options: []models.QuizOption{
			{ID: "q7a", Text: "An enthusiastic friend who celebrates every mile", Scores: ps{models.PersonaPep: 2, models.PersonaSunny: 1}},
			{ID: "q7b", Text: "A knowledgeable coach who teaches me about fitness", Scores: ps{models.PersonaDrQuinn: 3}},
			{ID: "q7c", Text: "A competitive rival who pushes me to go further", Scores: ps{models.PersonaRico: 3}},
			{ID: "q7d", Text: "A wise mentor who makes walks feel meditative", Scores: ps{models.PersonaFern: 3}},
		},
	},
	{
		ID:       "q8",
		Question: "You have a packed schedule and only 15 minutes to spare. How do you justify a short walk?",
		Options: []models.QuizOption{
			{ID: "q8a", Text: "Even a short burst of movement improves cognitive function and blood flow.", Scores: ps{models.PersonaDrQuinn: 3}},
			{ID: "q8b", Text: "I promised myself I'd do something today, and I don't want to let myself down.", Scores: ps{models.PersonaSunny: 2, models.PersonaFern: 1}},
			{ID: "q8c", Text: "15 minutes is better than 0. Don't let the day win—get out there!", Scores: ps{models.PersonaRico: 3}},
			{ID: "q8d", Text: "Use this time to breathe and reset your nervous system.", Scores: ps{models.PersonaFern: 3}},
		},
	},
	{
		ID:       "q9",
		Question: "What kind of 'reward' for hitting a milestone actually feels valuable to you?",
		Options: []models.QuizOption{
			{ID: "q9a", Text: "A digital trophy or a shoutout on a leaderboard.", Scores: ps{models.PersonaRico: 2, models.PersonaPep: 1}},
			{ID: "q9b", Text: "A summary report showing exactly how much my fitness has improved.", Scores: ps{models.PersonaDrQuinn: 3}},
			{ID: "q9c", Text: "A heartfelt 'I'm so impressed by your dedication' message.", Scores: ps{models.PersonaSunny: 2, models.PersonaPep: 1}},
			{ID: "q9d", Text: "The quiet satisfaction of knowing I'm becoming a more disciplined person.", Scores: ps{models.PersonaFern: 2, models.PersonaRusty: 1}},
		},
	},
	{
		ID:       "q10",
		Question: "It's raining outside and you really don't want to go. What's the one thing that gets you out the door?",
		Options: []models.QuizOption{
			{ID: "q10a", Text: "The rain won't melt you. Stop making excuses and go.", Scores: ps{models.PersonaRusty: 3, models.PersonaRico: 1}},
			{ID: "q10b", Text: "Think of how cozy and accomplished you'll feel when you get back inside!", Scores: ps{models.PersonaPep: 2, models.PersonaSunny: 1}},
			{ID: "q10c", Text: "Walking in nature—even in the rain—can be a powerful grounding experience.", Scores: ps{models.PersonaFern: 3}},
			{ID: "q10d", Text: "Rain gear exists for a reason; your cardiovascular goals don't care about the weather.", Scores: ps{models.PersonaDrQuinn: 2, models.PersonaRico: 1}},
		},
	},
}
