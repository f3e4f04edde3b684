package planner

import "math"

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Macros is the daily gram target per macronutrient.
type Macros struct {
	ProteinGrams int `json:"proteinGrams"`
	CarbsGrams   int `json:"carbsGrams"`
	FatsGrams    int `json:"fatsGrams"`
}

// Calories is the energy the gram targets add back up to. It drifts from the
// calorie target by at most the rounding of three independent terms.
func (m Macros) Calories() int {
	return m.ProteinGrams*kcalPerGramProtein + m.CarbsGrams*kcalPerGramCarbs + m.FatsGrams*kcalPerGramFat
}

// MacroRatio is the share of calories given to each macronutrient.
type MacroRatio struct {
	Protein float64
	Carbs   float64
	Fats    float64
}

// MacroRatio returns the goal's split, maintenance when unknown.
func (g Goal) MacroRatio() MacroRatio {
	switch g {
	case GoalFatLoss:
		return MacroRatio{Protein: 0.35, Carbs: 0.30, Fats: 0.35}
	case GoalMuscleGain:
		return MacroRatio{Protein: 0.30, Carbs: 0.45, Fats: 0.25}
	case GoalRecomposition:
		return MacroRatio{Protein: 0.33, Carbs: 0.37, Fats: 0.30}
	default:
		return MacroRatio{Protein: 0.30, Carbs: 0.40, Fats: 0.30}
	}
}

// AllocateMacros splits targetCalories into grams. Each macro is rounded on
// its own; the result is not corrected to sum back to the target.
func AllocateMacros(goal Goal, targetCalories int) Macros {
	r := goal.MacroRatio()
	cal := float64(targetCalories)
	return Macros{
		ProteinGrams: nonNegative(math.Round(cal * r.Protein / kcalPerGramProtein)),
		CarbsGrams:   nonNegative(math.Round(cal * r.Carbs / kcalPerGramCarbs)),
		FatsGrams:    nonNegative(math.Round(cal * r.Fats / kcalPerGramFat)),
	}
}

func nonNegative(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}
