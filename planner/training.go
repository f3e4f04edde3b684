package planner

import (
	"fmt"
	"strings"
)

const (
	maxMainLifts   = 3
	maxAccessories = 2
)

// TrainingDay is one session of the weekly schedule.
type TrainingDay struct {
	Day          string   `json:"day"`
	Focus        string   `json:"focus"`
	MainLifts    []string `json:"mainLifts"`
	Accessories  []string `json:"accessories"`
	Conditioning string   `json:"conditioning"`
}

// dayTemplate describes a training day before exercises are picked.
type dayTemplate struct {
	focus        string
	groups       []MuscleGroup
	conditioning string
}

var (
	threeDaySplit = []dayTemplate{
		{"Chest + Back", []MuscleGroup{Chest, Back}, "10-15 min zone 2 bike or incline walk"},
		{"Legs + Core", []MuscleGroup{Quads, Hamstrings, Glutes}, "8 rounds of 30s hard / 60s easy"},
		{"Shoulders + Arms", []MuscleGroup{Shoulders, Biceps, Triceps}, "10 min low-impact cardio cooldown"},
	}

	fourDaySplit = []dayTemplate{
		{"Chest + Biceps", []MuscleGroup{Chest, Biceps}, "10 min incline walk"},
		{"Back + Triceps", []MuscleGroup{Back, Triceps}, "10 min rower flush"},
		{"Quads + Calves", []MuscleGroup{Quads, Calves}, "12 min zone 2 bike"},
		{"Hamstrings + Glutes + Shoulders", []MuscleGroup{Hamstrings, Glutes, Shoulders}, "6 rounds sled push or brisk intervals"},
	}

	fiveDaySplit = []dayTemplate{
		{"Push (Chest + Shoulders + Triceps)", []MuscleGroup{Chest, Shoulders, Triceps}, "8-10 min easy cardio"},
		{"Pull (Back + Biceps)", []MuscleGroup{Back, Biceps}, "10 min row"},
		{"Legs (Quads + Hamstrings + Calves)", []MuscleGroup{Quads, Hamstrings, Calves}, "10 min incline walk"},
		{"Chest + Back Volume", []MuscleGroup{Chest, Back}, "12 min zone 2"},
		{"Glutes + Shoulders + Arms", []MuscleGroup{Glutes, Shoulders, Biceps, Triceps}, "10 min mixed intervals"},
	}
)

// activeRecoveryDay is the optional sixth day of the five-day split. It is not
// drawn from the exercise library and is never equipment-adapted.
func activeRecoveryDay(dayNumber int) TrainingDay {
	return TrainingDay{
		Day:          dayLabel(dayNumber),
		Focus:        "Active Recovery",
		MainLifts:    []string{"Mobility Flow 20 min", "Bodyweight Circuit 3 rounds"},
		Accessories:  []string{"Band Pull Aparts 3x20", "Deep Stretching 10 min"},
		Conditioning: "Long walk 45-60 minutes",
	}
}

func dayLabel(n int) string {
	return fmt.Sprintf("Day %d", n)
}

// WeeklySchedule picks the split for workoutDays and fills every day from the
// exercise library. Up to 3 days use the three-day split, 4 the four-day
// split, 5 and more the five-day split plus active recovery. Templates longer
// than workoutDays lose their trailing days; muscle coverage is not rebalanced.
func WeeklySchedule(workoutDays int, equipmentAccess string) []TrainingDay {
	var templates []dayTemplate
	withRecovery := false
	switch {
	case workoutDays <= 3:
		templates = threeDaySplit
	case workoutDays == 4:
		templates = fourDaySplit
	default:
		templates = fiveDaySplit
		withRecovery = true
	}

	schedule := make([]TrainingDay, 0, max(workoutDays, 0))
	for i, t := range templates {
		if len(schedule) >= workoutDays {
			return schedule
		}
		schedule = append(schedule, buildTrainingDay(i+1, t, equipmentAccess))
	}
	if withRecovery && len(schedule) < workoutDays {
		schedule = append(schedule, activeRecoveryDay(len(schedule)+1))
	}
	return schedule
}

// buildTrainingDay takes the first three pooled exercises as main lifts and
// the next two as accessories. Core and calves entries join the accessory
// pool, after the leftover compound work, when the focus names them.
func buildTrainingDay(dayNumber int, t dayTemplate, equipmentAccess string) TrainingDay {
	pool := exercisePool(t.groups...)
	split := min(maxMainLifts, len(pool))
	mainLifts := pool[:split]
	accessoryPool := append([]string(nil), pool[split:]...)

	focus := strings.ToLower(t.focus)
	if strings.Contains(focus, string(Core)) {
		accessoryPool = append(accessoryPool, exerciseLibrary[Core]...)
	}
	if strings.Contains(focus, string(Calves)) {
		accessoryPool = append(accessoryPool, exerciseLibrary[Calves]...)
	}
	accessories := accessoryPool[:min(maxAccessories, len(accessoryPool))]

	return TrainingDay{
		Day:          dayLabel(dayNumber),
		Focus:        t.focus,
		MainLifts:    AdaptExercises(mainLifts, equipmentAccess),
		Accessories:  AdaptExercises(accessories, equipmentAccess),
		Conditioning: t.conditioning,
	}
}
