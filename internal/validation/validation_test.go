package validation

import "testing"

func TestValidateStepAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  int
		wantErr bool
	}{
		{"typical entry", 2500, false},
		{"single step", 1, false},
		{"zero", 0, true},
		{"negative", -100, true},
		{"at the cap", 100000, false},
		{"over the cap", 100001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStepAmount(tt.amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStepAmount(%d) error = %v, wantErr %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDailyGoal(t *testing.T) {
	tests := []struct {
		name    string
		goal    int
		wantErr bool
	}{
		{"default goal", 7000, false},
		{"minimum", 1000, false},
		{"below minimum", 999, true},
		{"maximum", 50000, false},
		{"above maximum", 50001, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDailyGoal(tt.goal)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDailyGoal(%d) error = %v, wantErr %v", tt.goal, err, tt.wantErr)
			}
		})
	}
}
