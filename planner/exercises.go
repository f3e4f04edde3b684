package planner

import "slices"

// MuscleGroup keys the exercise library.
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	Back       MuscleGroup = "back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Quads      MuscleGroup = "quads"
	Hamstrings MuscleGroup = "hamstrings"
	Glutes     MuscleGroup = "glutes"
	Calves     MuscleGroup = "calves"
	Core       MuscleGroup = "core"
)

// exerciseLibrary is ordered: selection always takes entries front to back.
var exerciseLibrary = map[MuscleGroup][]string{
	Chest:      {"Bench Press 4x6", "Incline DB Press 3x10", "Cable Fly 3x12"},
	Back:       {"Barbell Row 4x8", "Lat Pulldown 3x10", "Chest Supported Row 3x12"},
	Shoulders:  {"Overhead Press 4x6", "Lateral Raise 3x15", "Face Pull 3x15"},
	Biceps:     {"EZ Bar Curl 3x12", "Hammer Curl 3x12"},
	Triceps:    {"Triceps Pressdown 3x12", "Overhead Triceps Extension 3x12"},
	Quads:      {"Back Squat 4x6", "Leg Press 3x12", "Walking Lunge 3x10/leg"},
	Hamstrings: {"Romanian Deadlift 4x8", "Leg Curl 3x12"},
	Glutes:     {"Hip Thrust 4x8", "Bulgarian Split Squat 3x10/leg"},
	Calves:     {"Standing Calf Raise 4x15"},
	Core:       {"Plank 3x45s", "Ab Wheel 3x10"},
}

// lowEquipmentSubstitutions maps a gym exercise to a home or bodyweight
// equivalent. No value is also a key.
var lowEquipmentSubstitutions = map[string]string{
	"Bench Press 4x6":          "Push-up Variations 4xAMRAP",
	"Incline DB Press 3x10":    "Feet-Elevated Push-up 3x12",
	"Cable Fly 3x12":           "Resistance Band Fly 3x15",
	"Barbell Row 4x8":          "Backpack Row 4x12",
	"Lat Pulldown 3x10":        "Band Lat Pulldown 3x15",
	"Chest Supported Row 3x12": "Single-arm DB/Backpack Row 3x12",
	"Overhead Press 4x6":       "Pike Push-up 4x10",
	"Back Squat 4x6":           "Goblet Squat 4x10",
	"Leg Press 3x12":           "Split Squat 3x12",
	"Romanian Deadlift 4x8":    "Single-leg RDL 4x10",
	"Hip Thrust 4x8":           "Glute Bridge 4x15",
	"Standing Calf Raise 4x15": "Single-leg Calf Raise 4x20",
}

// ExercisesFor returns a copy of the library entries for a muscle group, nil
// for unknown groups.
func ExercisesFor(group MuscleGroup) []string {
	return slices.Clone(exerciseLibrary[group])
}

// Substitution returns the low-equipment replacement for an exercise.
func Substitution(exercise string) (string, bool) {
	s, ok := lowEquipmentSubstitutions[exercise]
	return s, ok
}

// exercisePool concatenates library entries for the groups in the given order.
func exercisePool(groups ...MuscleGroup) []string {
	var pool []string
	for _, g := range groups {
		pool = append(pool, exerciseLibrary[g]...)
	}
	return pool
}
