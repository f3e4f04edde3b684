// Package planner builds a deterministic nutrition and training plan from a
// validated user profile. Every function here is pure: no I/O, no clock, no
// randomness, and the static tables are never mutated after init, so Build is
// safe to call from any number of goroutines without locking.
package planner

// Sex selects the constant term of the BMR equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Goal drives the calorie adjustment, the macro ratio template and the
// goal-conditioned guidance text. Unrecognized values behave like maintenance.
type Goal string

const (
	GoalFatLoss       Goal = "fat_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalRecomposition Goal = "recomposition"
	GoalMaintenance   Goal = "maintenance"
)

// Goals lists the accepted goal values in display order.
var Goals = []Goal{GoalFatLoss, GoalMuscleGain, GoalRecomposition, GoalMaintenance}

// ActivityLevel selects the TDEE multiplier. Unrecognized values behave like
// moderate.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// ActivityLevels lists the accepted activity levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityAthlete,
}

// Profile is the engine input. Callers must reject out-of-range values before
// calling Build: age 13-90, weight 30-300 kg, height 120-230 cm, workout days 2-6.
type Profile struct {
	FullName           string        `json:"fullName"`
	Age                int           `json:"age"`
	Sex                Sex           `json:"sex"`
	WeightKg           float64       `json:"weightKg"`
	HeightCm           float64       `json:"heightCm"`
	Goal               Goal          `json:"goal"`
	ActivityLevel      ActivityLevel `json:"activityLevel"`
	WorkoutDays        int           `json:"workoutDays"`
	DietaryPreferences string        `json:"dietaryPreferences"`
	EquipmentAccess    string        `json:"equipmentAccess"`
}
