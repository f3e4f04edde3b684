package planner

import "testing"

// baseProfile is an 80kg, 180cm, 30-year-old male on a moderate fat-loss plan.
// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780.
func baseProfile() Profile {
	return Profile{
		FullName:      "Alex",
		Age:           30,
		Sex:           SexMale,
		WeightKg:      80,
		HeightCm:      180,
		Goal:          GoalFatLoss,
		ActivityLevel: ActivityModerate,
		WorkoutDays:   4,
	}
}

func TestEstimateEnergy_BaseProfile(t *testing.T) {
	got := EstimateEnergy(baseProfile())
	want := Energy{BMR: 1780, TDEE: 2759, TargetCalories: 2359}
	if got != want {
		t.Errorf("EstimateEnergy() = %+v, want %+v", got, want)
	}
}

// TestEstimateEnergy_UnroundedBMRFeedsTDEE uses a profile whose BMR lands on
// exactly 1882.5. Rounding BMR first would give round(1883*1.55) = 2919; the
// unrounded value gives round(2917.875) = 2918.
func TestEstimateEnergy_UnroundedBMRFeedsTDEE(t *testing.T) {
	p := baseProfile()
	p.WeightKg = 89
	p.HeightCm = 182

	got := EstimateEnergy(p)
	if got.TDEE != 2918 {
		t.Errorf("TDEE = %d, want 2918", got.TDEE)
	}
	if got.TargetCalories != 2518 {
		t.Errorf("TargetCalories = %d, want 2518", got.TargetCalories)
	}
	if got.BMR != 1883 {
		t.Errorf("reported BMR = %d, want 1883", got.BMR)
	}
}

// TestEstimateEnergy_FemaleOffset checks the -161 constant: 600 + 1031.25 - 125 - 161 = 1345.25.
func TestEstimateEnergy_FemaleOffset(t *testing.T) {
	p := Profile{Age: 25, Sex: SexFemale, WeightKg: 60, HeightCm: 165, Goal: GoalMaintenance, ActivityLevel: ActivitySedentary}
	got := EstimateEnergy(p)
	want := Energy{BMR: 1345, TDEE: 1614, TargetCalories: 1614}
	if got != want {
		t.Errorf("EstimateEnergy() = %+v, want %+v", got, want)
	}
}

func TestActivityLevel_Multiplier(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLight, 1.375},
		{ActivityModerate, 1.55},
		{ActivityActive, 1.725},
		{ActivityAthlete, 1.9},
		{"couch_potato", 1.55},
		{"", 1.55},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.Multiplier(); got != tt.want {
				t.Errorf("Multiplier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoal_CalorieAdjustment(t *testing.T) {
	tests := []struct {
		goal Goal
		want int
	}{
		{GoalFatLoss, -400},
		{GoalMuscleGain, 300},
		{GoalRecomposition, 0},
		{GoalMaintenance, 0},
		{"bulk_forever", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			if got := tt.goal.CalorieAdjustment(); got != tt.want {
				t.Errorf("CalorieAdjustment() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestEstimateEnergy_PositiveAcrossValidRange sweeps the corners of the valid
// input box with the lowest-energy settings and expects a positive target.
func TestEstimateEnergy_PositiveAcrossValidRange(t *testing.T) {
	for _, sex := range []Sex{SexMale, SexFemale} {
		for _, age := range []int{13, 50, 90} {
			for _, weight := range []float64{30, 150, 300} {
				for _, height := range []float64{120, 175, 230} {
					for _, goal := range Goals {
						for _, level := range ActivityLevels {
							p := Profile{Age: age, Sex: sex, WeightKg: weight, HeightCm: height, Goal: goal, ActivityLevel: level}
							if e := EstimateEnergy(p); e.TargetCalories <= 0 {
								t.Fatalf("TargetCalories = %d for %+v, want > 0", e.TargetCalories, p)
							}
						}
					}
				}
			}
		}
	}
}
