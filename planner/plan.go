package planner

import (
	"fmt"
	"strings"
)

const hydrationLiters = 2.5

// Plan is the assembled output. It round-trips through JSON; no field relies
// on key order for meaning.
type Plan struct {
	Summary            string             `json:"summary"`
	Nutrition          Nutrition          `json:"nutrition"`
	Activity           Activity           `json:"activity"`
	BodyMetrics        BodyMetrics        `json:"bodyMetrics"`
	Recovery           Recovery           `json:"recovery"`
	FoodLoggerTemplate FoodLoggerTemplate `json:"foodLoggerTemplate"`
}

type Nutrition struct {
	TargetCalories  int      `json:"targetCalories"`
	Macros          Macros   `json:"macros"`
	HydrationLiters float64  `json:"hydrationLiters"`
	MealIdeas       []string `json:"mealIdeas"`
	MealStructure   []Meal   `json:"mealStructure"`
	GroceryList     []string `json:"groceryList"`
}

type Activity struct {
	WeeklySchedule []TrainingDay `json:"weeklySchedule"`
	Cardio         string        `json:"cardio"`
	StepTarget     string        `json:"stepTarget"`
	Progression    string        `json:"progression"`
}

type BodyMetrics struct {
	TargetRate      string   `json:"targetRate"`
	CheckInDays     []string `json:"checkInDays"`
	AdjustmentRules []string `json:"adjustmentRules"`
}

type Recovery struct {
	SleepHours       string   `json:"sleepHours"`
	Deload           string   `json:"deload"`
	StressManagement []string `json:"stressManagement"`
}

// DailyTargets mirrors the nutrition numbers for the food logger.
type DailyTargets struct {
	Calories     int `json:"calories"`
	ProteinGrams int `json:"proteinGrams"`
	CarbsGrams   int `json:"carbsGrams"`
	FatsGrams    int `json:"fatsGrams"`
}

type FoodLoggerTemplate struct {
	DailyTargets DailyTargets `json:"dailyTargets"`
	Prompts      []string     `json:"prompts"`
}

/* ─── Assembly ───────────────────────────────────────────────────────── */

// Build runs every stage for the profile and assembles the plan. The same
// profile always yields the same plan.
func Build(p Profile) Plan {
	energy := EstimateEnergy(p)
	macros := AllocateMacros(p.Goal, energy.TargetCalories)

	return Plan{
		Summary: summary(p),
		Nutrition: Nutrition{
			TargetCalories:  energy.TargetCalories,
			Macros:          macros,
			HydrationLiters: hydrationLiters,
			MealIdeas:       MealIdeas(p.DietaryPreferences, energy.TargetCalories),
			MealStructure:   MealStructure(macros),
			GroceryList:     GroceryList(),
		},
		Activity: Activity{
			WeeklySchedule: WeeklySchedule(p.WorkoutDays, p.EquipmentAccess),
			Cardio:         cardio(p.Goal),
			StepTarget:     stepTarget(p.Goal),
			Progression:    "Progress by adding reps, load, or execution quality weekly while keeping 1-2 reps in reserve.",
		},
		BodyMetrics: BodyMetrics{
			TargetRate:  targetRate(p.Goal),
			CheckInDays: []string{"Monday morning weigh-in", "Thursday waist measurement", "Sunday weekly review"},
			AdjustmentRules: []string{
				"If scale trend stalls for 14 days, adjust calories by ±150.",
				"If recovery drops, reduce volume by 15-20% for 1 week.",
			},
		},
		Recovery: Recovery{
			SleepHours: "7-9 hours nightly",
			Deload:     "Every 6-8 weeks reduce volume by 30-40% for one week.",
			StressManagement: []string{
				"Walk daily 8k-10k steps",
				"Stretch 10 minutes after sessions",
				"2 rest rituals daily (breathwork/journaling)",
			},
		},
		FoodLoggerTemplate: FoodLoggerTemplate{
			DailyTargets: DailyTargets{
				Calories:     energy.TargetCalories,
				ProteinGrams: macros.ProteinGrams,
				CarbsGrams:   macros.CarbsGrams,
				FatsGrams:    macros.FatsGrams,
			},
			Prompts: []string{"Meal + portion", "Protein grams estimate", "Hunger/satiety (1-10)", "Energy level (1-10)"},
		},
	}
}

func summary(p Profile) string {
	goal := strings.Replace(string(p.Goal), "_", " ", 1)
	return fmt.Sprintf("Personalized %s plan for %s (%d training days/week), aligned to profile inputs and constraints.",
		goal, p.FullName, p.WorkoutDays)
}

func targetRate(g Goal) string {
	switch g {
	case GoalFatLoss:
		return "-0.3kg to -0.7kg per week"
	case GoalMuscleGain:
		return "+0.15kg to +0.35kg per week"
	default:
		return "Weight stable ±0.2kg"
	}
}

func cardio(g Goal) string {
	if g == GoalFatLoss {
		return "3 sessions/week of 20-30 min zone 2 or intervals."
	}
	return "1-2 sessions/week zone 2 for recovery and heart health."
}

func stepTarget(g Goal) string {
	if g == GoalFatLoss {
		return "9,000-12,000 steps/day"
	}
	return "7,000-10,000 steps/day"
}
