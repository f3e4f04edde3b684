package planner

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestBuild_RequiredSections(t *testing.T) {
	plan := Build(baseProfile())

	if plan.Summary == "" {
		t.Error("summary is empty")
	}
	if plan.Nutrition.TargetCalories != 2359 {
		t.Errorf("targetCalories = %d, want 2359", plan.Nutrition.TargetCalories)
	}
	if plan.Nutrition.Macros != (Macros{206, 177, 92}) {
		t.Errorf("macros = %+v", plan.Nutrition.Macros)
	}
	if len(plan.Activity.WeeklySchedule) != 4 {
		t.Errorf("weekly schedule has %d days, want 4", len(plan.Activity.WeeklySchedule))
	}
	if plan.Recovery.SleepHours == "" {
		t.Error("sleepHours is empty")
	}
	if plan.Nutrition.HydrationLiters != 2.5 {
		t.Errorf("hydrationLiters = %v", plan.Nutrition.HydrationLiters)
	}
	want := DailyTargets{Calories: 2359, ProteinGrams: 206, CarbsGrams: 177, FatsGrams: 92}
	if plan.FoodLoggerTemplate.DailyTargets != want {
		t.Errorf("dailyTargets = %+v, want %+v", plan.FoodLoggerTemplate.DailyTargets, want)
	}
}

func TestBuild_Summary(t *testing.T) {
	p := baseProfile()
	p.Goal = GoalMuscleGain
	p.WorkoutDays = 5
	want := "Personalized muscle gain plan for Alex (5 training days/week), aligned to profile inputs and constraints."
	if got := Build(p).Summary; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	p := baseProfile()
	p.EquipmentAccess = "home"
	p.DietaryPreferences = "Vegetarian, no mushrooms"

	first, err := json.Marshal(Build(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 20; i++ {
		next, _ := json.Marshal(Build(p))
		if !bytes.Equal(first, next) {
			t.Fatalf("run %d produced different JSON", i)
		}
	}
}

// TestBuild_JSONRoundTrip decodes the serialized plan back into a Plan and
// re-encodes it, as the persistence layer does.
func TestBuild_JSONRoundTrip(t *testing.T) {
	plan := Build(baseProfile())
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Plan
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	again, _ := json.Marshal(decoded)
	if !bytes.Equal(raw, again) {
		t.Errorf("round trip changed the plan:\n%s\n%s", raw, again)
	}
	for _, key := range []string{`"nutrition"`, `"activity"`, `"bodyMetrics"`, `"recovery"`, `"foodLoggerTemplate"`, `"weeklySchedule"`} {
		if !bytes.Contains(raw, []byte(key)) {
			t.Errorf("serialized plan missing %s", key)
		}
	}
}

func TestBuild_GoalConditionedText(t *testing.T) {
	tests := []struct {
		goal       Goal
		targetRate string
		stepTarget string
	}{
		{GoalFatLoss, "-0.3kg to -0.7kg per week", "9,000-12,000 steps/day"},
		{GoalMuscleGain, "+0.15kg to +0.35kg per week", "7,000-10,000 steps/day"},
		{GoalRecomposition, "Weight stable ±0.2kg", "7,000-10,000 steps/day"},
		{GoalMaintenance, "Weight stable ±0.2kg", "7,000-10,000 steps/day"},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			p := baseProfile()
			p.Goal = tt.goal
			plan := Build(p)
			if plan.BodyMetrics.TargetRate != tt.targetRate {
				t.Errorf("targetRate = %q, want %q", plan.BodyMetrics.TargetRate, tt.targetRate)
			}
			if plan.Activity.StepTarget != tt.stepTarget {
				t.Errorf("stepTarget = %q, want %q", plan.Activity.StepTarget, tt.stepTarget)
			}
			isFatLoss := tt.goal == GoalFatLoss
			if got := strings.HasPrefix(plan.Activity.Cardio, "3 sessions/week"); got != isFatLoss {
				t.Errorf("cardio = %q", plan.Activity.Cardio)
			}
		})
	}
}

// TestBuild_ValidProfiles sweeps workout days, goals and activity levels and
// checks the invariants every plan must hold.
func TestBuild_ValidProfiles(t *testing.T) {
	for days := 2; days <= 6; days++ {
		for _, goal := range Goals {
			for _, level := range ActivityLevels {
				p := baseProfile()
				p.WorkoutDays = days
				p.Goal = goal
				p.ActivityLevel = level
				plan := Build(p)

				n := plan.Nutrition
				if n.TargetCalories <= 0 {
					t.Fatalf("targetCalories = %d for %+v", n.TargetCalories, p)
				}
				if n.Macros.ProteinGrams < 0 || n.Macros.CarbsGrams < 0 || n.Macros.FatsGrams < 0 {
					t.Fatalf("negative macros %+v", n.Macros)
				}
				if diff := n.Macros.Calories() - n.TargetCalories; diff < -10 || diff > 10 {
					t.Fatalf("macro calories off by %d for %+v", diff, p)
				}
				if len(plan.Activity.WeeklySchedule) != days {
					t.Fatalf("schedule length %d, want %d", len(plan.Activity.WeeklySchedule), days)
				}
			}
		}
	}
}

func TestBuild_HomeEquipmentNeverShowsSubstitutedLifts(t *testing.T) {
	p := baseProfile()
	p.EquipmentAccess = "home, no equipment"
	for days := 2; days <= 6; days++ {
		p.WorkoutDays = days
		for _, d := range Build(p).Activity.WeeklySchedule {
			for _, name := range append(append([]string{}, d.MainLifts...), d.Accessories...) {
				if _, ok := Substitution(name); ok {
					t.Errorf("%s still lists %q", d.Day, name)
				}
			}
		}
	}
}
