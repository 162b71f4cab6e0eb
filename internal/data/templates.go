package data

import "github.com/walkiapp/walki/internal/models"

// NotificationLibrary is the full persona-voiced template catalog. Templates
// carry {{variable}} placeholders resolved by the inject package and context
// tags consumed by the selector. Weights bias in-persona variety; the user's
// persona percentages do the heavy lifting across personas.
var NotificationLibrary = []models.NotificationTemplate{
	// Sunny: the companion
	{ID: "sunny-1", PersonaID: models.PersonaSunny, Template: "Hey! Only {{steps_remaining}} steps to go. Want to knock them out together? ☀️", ContextTags: []string{"evening", "close-to-goal"}, Weight: 1},
	{ID: "sunny-2", PersonaID: models.PersonaSunny, Template: "Day {{streak_length}}! I'm so proud of you. Let's make it {{streak_length_plus_3}} by the weekend, yeah?", ContextTags: []string{"streak", "milestone"}, Weight: 1},
	{ID: "sunny-3", PersonaID: models.PersonaSunny, Template: "Morning! A {{weather}} {{day_of_week}} is still a great day for a walk. I'll be with you the whole way.", ContextTags: []string{"morning", "on-track"}, Weight: 1},
	{ID: "sunny-4", PersonaID: models.PersonaSunny, Template: "You did it! {{steps_taken}} steps today. Seriously, that's wonderful.", ContextTags: []string{"goal-reached"}, Weight: 1.2},

	// Dr. Quinn: the educator
	{ID: "dr-quinn-1", PersonaID: models.PersonaDrQuinn, Template: "You've burned roughly {{calories_burned}} calories so far today. {{steps_remaining}} more steps closes out your cardiovascular dose.", ContextTags: []string{"afternoon", "on-track", "close-to-goal"}, Weight: 1},
	{ID: "dr-quinn-2", PersonaID: models.PersonaDrQuinn, Template: "A {{streak_length}}-day streak measurably lowers resting heart rate and inflammation. Day {{milestone_next}} is the next marker worth hitting.", ContextTags: []string{"streak", "milestone"}, Weight: 1},
	{ID: "dr-quinn-3", PersonaID: models.PersonaDrQuinn, Template: "Studies show morning walks increase productivity by 23%. {{daily_goal}} steps is the target; invest early.", ContextTags: []string{"morning", "behind-goal"}, Weight: 1},
	{ID: "dr-quinn-4", PersonaID: models.PersonaDrQuinn, Template: "About {{minutes_remaining}} minutes of walking closes the gap. That's one phone call's worth of movement.", ContextTags: []string{"evening", "close-to-goal"}, Weight: 1},

	// Pep: the cheerleader
	{ID: "pep-1", PersonaID: models.PersonaPep, Template: "DAY {{streak_length}}!! You're UNSTOPPABLE! Let's GOOOO! 🎉🔥💪", ContextTags: []string{"streak", "milestone"}, Weight: 1.5},
	{ID: "pep-2", PersonaID: models.PersonaPep, Template: "Only {{steps_remaining}} left?! You're SO CLOSE! FINISH STRONG! 🚀", ContextTags: []string{"close-to-goal", "evening"}, Weight: 1},
	{ID: "pep-3", PersonaID: models.PersonaPep, Template: "Good morning, superstar! ☀️ {{daily_goal}} steps today — YOUR day! Let's make it incredible!", ContextTags: []string{"morning", "behind-goal", "on-track"}, Weight: 1},
	{ID: "pep-4", PersonaID: models.PersonaPep, Template: "GOALLL! {{steps_taken}} steps!! I'M SO PROUD OF YOU! 🎉🎉", ContextTags: []string{"goal-reached"}, Weight: 1.5},

	// Rico: the challenger
	{ID: "rico-1", PersonaID: models.PersonaRico, Template: "{{steps_yesterday}} steps yesterday? That's cute. You're {{steps_remaining}} short right now. Move.", ContextTags: []string{"behind-goal", "evening"}, Weight: 1},
	{ID: "rico-2", PersonaID: models.PersonaRico, Template: "Your neighbor logged {{neighbor_steps}} yesterday. You gonna take that on a {{day_of_week}}? Didn't think so.", ContextTags: []string{"afternoon", "behind-goal"}, Weight: 1},
	{ID: "rico-3", PersonaID: models.PersonaRico, Template: "{{streak_length}} days. Fine. Bet you can't push the goal to {{daily_goal_increased}} tomorrow.", ContextTags: []string{"goal-reached", "streak"}, Weight: 1},
	{ID: "rico-4", PersonaID: models.PersonaRico, Template: "{{steps_remaining}} steps between you and day {{streak_length}}. That's a warm-up. Prove it.", ContextTags: []string{"close-to-goal", "streak"}, Weight: 1},

	// Fern: the sage
	{ID: "fern-1", PersonaID: models.PersonaFern, Template: "Each step is a meditation. Your {{streak_length}}-day streak is a practice in presence and commitment.", ContextTags: []string{"streak", "on-track"}, Weight: 1},
	{ID: "fern-2", PersonaID: models.PersonaFern, Template: "An evening walk clears the day's residue. {{minutes_remaining}} mindful minutes is all the path asks of you.", ContextTags: []string{"evening", "close-to-goal", "behind-goal"}, Weight: 1},
	{ID: "fern-3", PersonaID: models.PersonaFern, Template: "A {{weather}} morning invites a slower pace. Begin gently; the {{daily_goal}} steps will follow.", ContextTags: []string{"morning", "on-track"}, Weight: 1},
	{ID: "fern-4", PersonaID: models.PersonaFern, Template: "The goal is reached, and yet it was never about the goal. Thank yourself for showing up today.", ContextTags: []string{"goal-reached"}, Weight: 1},

	// Rusty: the pessimist
	{ID: "rusty-1", PersonaID: models.PersonaRusty, Template: "Day {{streak_length}}. Statistically you'll quit before day {{milestone_next}}. But sure, surprise me.", ContextTags: []string{"streak"}, Weight: 1},
	{ID: "rusty-2", PersonaID: models.PersonaRusty, Template: "Oh look, it's {{weather}}. Perfect excuse to skip the {{steps_remaining}} steps you still owe. You were going to anyway.", ContextTags: []string{"behind-goal", "evening"}, Weight: 1},
	{ID: "rusty-3", PersonaID: models.PersonaRusty, Template: "You actually hit {{steps_taken}} steps? Huh. Color me surprised. Don't get cocky though.", ContextTags: []string{"goal-reached"}, Weight: 0.8},
	{ID: "rusty-4", PersonaID: models.PersonaRusty, Template: "{{steps_remaining}} left and it's already {{day_of_week}} evening. I've seen how this ends. Prove me wrong, I guess.", ContextTags: []string{"evening", "close-to-goal"}, Weight: 1},
}
