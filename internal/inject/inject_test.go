package inject

import (
	"reflect"
	"testing"

	"github.com/walkiapp/walki/internal/models"
)

var eveningContext = models.NotificationContext{
	StreakLength:   18,
	StepsRemaining: 753,
	StepsTaken:     6247,
	DailyGoal:      7000,
	TimeOfDay:      models.Evening,
	DayOfWeek:      "Monday",
}

func TestRender_DirectFields(t *testing.T) {
	got := Render("{{streak_length}} days, {{steps_remaining}} to go", eveningContext)
	if got != "18 days, 753 to go" {
		t.Errorf("Render = %q, want %q", got, "18 days, 753 to go")
	}

	got = Render("Happy {{day_of_week}}! {{steps_taken}}/{{daily_goal}} done.", eveningContext)
	if got != "Happy Monday! 6247/7000 done." {
		t.Errorf("Render = %q", got)
	}
}

func TestRender_DerivedFields(t *testing.T) {
	// eveningContext: streak 18, 6247 of 7000 steps. minutes_remaining is
	// ceil(753/100), calories_burned round(6247*0.04), daily_goal_increased
	// round(7000*1.5).
	tests := []struct {
		template string
		want     string
	}{
		{"{{minutes_remaining}} minutes left", "8 minutes left"},
		{"{{calories_burned}} calories so far", "250 calories so far"},
		{"{{milestone_next}} days is next", "21 days is next"},
		{"imagine day {{streak_length_plus_3}}", "imagine day 21"},
		{"try {{daily_goal_increased}} tomorrow", "try 10500 tomorrow"},
	}
	for _, tt := range tests {
		if got := Render(tt.template, eveningContext); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestRender_FixedStandIns(t *testing.T) {
	got := Render("yesterday {{steps_yesterday}}, neighbor {{neighbor_steps}}, sky {{weather}}", eveningContext)
	want := "yesterday 7500, neighbor 9200, sky cloudy"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_UnrecognizedPlaceholdersUntouched(t *testing.T) {
	got := Render("{{streak_length}} and {{mystery_value}}", eveningContext)
	if got != "18 and {{mystery_value}}" {
		t.Errorf("Render = %q, want unknown placeholder left intact", got)
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 7}, {6, 7}, {7, 14}, {18, 21}, {21, 30}, {29, 30},
		{30, 60}, {99, 100}, {100, 180}, {180, 365}, {365, 400}, {366, 400}, {401, 500},
	}
	for _, tt := range tests {
		if got := NextMilestone(tt.streak); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestExtractVariables(t *testing.T) {
	got := ExtractVariables("{{steps_taken}} of {{daily_goal}}, again {{steps_taken}}")
	want := []string{"steps_taken", "daily_goal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractVariables = %v, want %v", got, want)
	}

	if got := ExtractVariables("no placeholders here"); got != nil {
		t.Errorf("ExtractVariables = %v, want nil", got)
	}
}

func TestValidateTemplate(t *testing.T) {
	if got := ValidateTemplate("{{streak_length}} days, {{weather}} outside"); got != nil {
		t.Errorf("ValidateTemplate = %v, want nil for fully recognized template", got)
	}

	got := ValidateTemplate("{{bogus}} then {{streak_length}} then {{bogus}} then {{other}}")
	want := []string{"bogus", "other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateTemplate = %v, want %v", got, want)
	}
}
