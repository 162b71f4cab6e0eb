package selector

import (
	"testing"
	"time"

	"github.com/walkiapp/walki/internal/models"
)

var testLibrary = []models.NotificationTemplate{
	{ID: "sunny-1", PersonaID: models.PersonaSunny, Template: "Hey! {{steps_remaining}} to go.", ContextTags: []string{"evening", "close-to-goal"}, Weight: 1},
	{ID: "sunny-2", PersonaID: models.PersonaSunny, Template: "Day {{streak_length}} together!", ContextTags: []string{"morning", "streak"}, Weight: 1},
	{ID: "pep-1", PersonaID: models.PersonaPep, Template: "YESSS {{streak_length}} DAYS!", ContextTags: []string{"streak", "milestone"}, Weight: 1.5},
	{ID: "rico-1", PersonaID: models.PersonaRico, Template: "Only {{steps_remaining}} left. Move.", ContextTags: []string{"behind-goal"}, Weight: 1},
	{ID: "rusty-1", PersonaID: models.PersonaRusty, Template: "You'll probably quit anyway.", ContextTags: []string{"evening"}, Weight: 0.8},
}

var eveningContext = models.NotificationContext{
	StreakLength:   18,
	StepsRemaining: 753,
	StepsTaken:     6247,
	DailyGoal:      7000,
	TimeOfDay:      models.Evening,
	DayOfWeek:      "Monday",
}

func uniformWeights() models.PersonaPercentages {
	w := models.NewPersonaPercentages()
	for _, id := range models.PersonaIds {
		w[id] = 100 / len(models.PersonaIds)
	}
	return w
}

func soloWeights(id models.PersonaId) models.PersonaPercentages {
	w := models.NewPersonaPercentages()
	w[id] = 100
	return w
}

func TestSelect_ReturnsLibraryTemplate(t *testing.T) {
	picked, ok := Select(testLibrary, eveningContext, uniformWeights(), nil)
	if !ok {
		t.Fatal("expected a selection from a non-empty library")
	}

	found := false
	for _, tmpl := range testLibrary {
		if tmpl.ID == picked.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("selected template %q is not in the library", picked.ID)
	}
}

func TestSelect_EmptyLibrary(t *testing.T) {
	if _, ok := Select(nil, eveningContext, uniformWeights(), nil); ok {
		t.Error("expected no selection from an empty library")
	}
}

func TestSelect_SoloPersonaWeightOnlyReturnsThatPersona(t *testing.T) {
	for i := 0; i < 25; i++ {
		picked, ok := Select(testLibrary, eveningContext, soloWeights(models.PersonaSunny), nil)
		if !ok {
			t.Fatal("expected a selection")
		}
		if picked.PersonaID != models.PersonaSunny {
			t.Fatalf("run %d: selected %s template, want only sunny at 100%% weight", i, picked.PersonaID)
		}
	}
}

func TestSelect_RecencyExclusion(t *testing.T) {
	recent := []string{"sunny-1", "rusty-1"}
	for i := 0; i < 25; i++ {
		picked, _ := Select(testLibrary, eveningContext, uniformWeights(), recent)
		for _, id := range recent {
			if picked.ID == id {
				t.Fatalf("run %d: selected recently shown template %q", i, id)
			}
		}
	}
}

func TestSelect_RecencyRevertsWhenAllExcluded(t *testing.T) {
	all := make([]string, len(testLibrary))
	for i, tmpl := range testLibrary {
		all[i] = tmpl.ID
	}
	if _, ok := Select(testLibrary, eveningContext, uniformWeights(), all); !ok {
		t.Error("expected selection to revert to context-filtered set when recency empties it")
	}
}

func TestSelect_ZeroTotalWeightPicksUniformly(t *testing.T) {
	origIntn := randIntn
	defer func() { randIntn = origIntn }()
	randIntn = func(n int) int { return n - 1 }

	picked, ok := Select(testLibrary, eveningContext, models.NewPersonaPercentages(), nil)
	if !ok {
		t.Fatal("expected a selection despite all-zero weights")
	}
	if picked.ID == "" {
		t.Error("expected a concrete template")
	}
}

func TestSelect_DeterministicRouletteWheel(t *testing.T) {
	origFloat := randFloat64
	defer func() { randFloat64 = origFloat }()

	// Force the draw to land in the first candidate's slice, then the last's.
	randFloat64 = func() float64 { return 0.0001 }
	first, _ := Select(testLibrary, eveningContext, uniformWeights(), nil)

	randFloat64 = func() float64 { return 0.9999 }
	last, _ := Select(testLibrary, eveningContext, uniformWeights(), nil)

	if first.ID == last.ID {
		t.Errorf("expected draws at opposite ends of the wheel to differ, both gave %q", first.ID)
	}
}

func TestFilterByContext_AdvisoryFallback(t *testing.T) {
	morningOnly := []models.NotificationTemplate{
		{ID: "sunny-2", PersonaID: models.PersonaSunny, ContextTags: []string{"nonexistent-tag"}, Weight: 1},
	}
	filtered := filterByContext(morningOnly, eveningContext)
	if len(filtered) != 1 {
		t.Errorf("expected full-library fallback when nothing matches, got %d", len(filtered))
	}
}

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		name string
		ctx  models.NotificationContext
		want []string
	}{
		{
			name: "close to goal with milestone",
			ctx:  models.NotificationContext{StreakLength: 21, StepsRemaining: 500, DailyGoal: 7000, TimeOfDay: models.Evening},
			want: []string{"evening", "close-to-goal", "milestone", "streak"},
		},
		{
			name: "behind goal",
			ctx:  models.NotificationContext{StreakLength: 3, StepsRemaining: 5000, DailyGoal: 7000, TimeOfDay: models.Morning},
			want: []string{"morning", "behind-goal", "streak"},
		},
		{
			name: "on track",
			ctx:  models.NotificationContext{StreakLength: 5, StepsRemaining: 2000, DailyGoal: 7000, TimeOfDay: models.Afternoon},
			want: []string{"afternoon", "on-track", "streak"},
		},
		{
			name: "goal reached",
			ctx:  models.NotificationContext{StreakLength: 30, StepsRemaining: 0, DailyGoal: 7000, TimeOfDay: models.Evening},
			want: []string{"evening", "close-to-goal", "milestone", "streak", "goal-reached"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveTags(tt.ctx)
			if len(got) != len(tt.want) {
				t.Fatalf("deriveTags = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tag[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTimeOfDayAt(t *testing.T) {
	tests := []struct {
		hour int
		want models.TimeOfDay
	}{
		{5, models.Morning}, {11, models.Morning},
		{12, models.Afternoon}, {16, models.Afternoon},
		{17, models.Evening}, {23, models.Evening}, {0, models.Evening}, {4, models.Evening},
	}
	for _, tt := range tests {
		if got := TimeOfDayAt(tt.hour); got != tt.want {
			t.Errorf("TimeOfDayAt(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestNewContext(t *testing.T) {
	at := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC) // a Monday evening
	ctx := NewContext(18, 6247, 7000, &at)

	if ctx.StepsRemaining != 753 {
		t.Errorf("StepsRemaining = %d, want 753", ctx.StepsRemaining)
	}
	if ctx.TimeOfDay != models.Evening {
		t.Errorf("TimeOfDay = %s, want evening", ctx.TimeOfDay)
	}
	if ctx.DayOfWeek != "Monday" {
		t.Errorf("DayOfWeek = %s, want Monday", ctx.DayOfWeek)
	}

	over := NewContext(1, 9000, 7000, &at)
	if over.StepsRemaining != 0 {
		t.Errorf("StepsRemaining = %d, want 0 when past the goal", over.StepsRemaining)
	}
}
