package planner

import "math"

// Energy is the Energy Model output. BMR is reported rounded, but TDEE is
// computed from the unrounded value.
type Energy struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"targetCalories"`
}

// Multiplier returns the TDEE multiplier for the level, 1.55 when unknown.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityAthlete:
		return 1.9
	default:
		return 1.55
	}
}

// CalorieAdjustment is the flat kcal offset applied to TDEE for the goal.
func (g Goal) CalorieAdjustment() int {
	switch g {
	case GoalFatLoss:
		return -400
	case GoalMuscleGain:
		return 300
	default:
		return 0
	}
}

// baselineCalories is the Mifflin-St Jeor resting expenditure. Anything other
// than female gets the +5 constant.
func baselineCalories(p Profile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == SexFemale {
		return base - 161
	}
	return base + 5
}

// EstimateEnergy computes BMR, TDEE and the goal-adjusted daily calorie target.
func EstimateEnergy(p Profile) Energy {
	bmr := baselineCalories(p)
	tdee := int(math.Round(bmr * p.ActivityLevel.Multiplier()))
	return Energy{
		BMR:            int(math.Round(bmr)),
		TDEE:           tdee,
		TargetCalories: tdee + p.Goal.CalorieAdjustment(),
	}
}
