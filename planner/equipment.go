package planner

import "strings"

var lowEquipmentTerms = []string{"none", "bodyweight", "home", "minimal"}

// IsLowEquipment reports whether the free-text equipment description signals
// limited equipment. It is a substring heuristic: "home gym with a rack" still
// counts as low equipment.
func IsLowEquipment(equipmentAccess string) bool {
	text := strings.ToLower(equipmentAccess)
	for _, term := range lowEquipmentTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// AdaptExercises swaps each exercise for its low-equipment equivalent when
// equipmentAccess signals limited equipment. Unmapped names pass through, and
// the input slice is never modified.
func AdaptExercises(exercises []string, equipmentAccess string) []string {
	out := make([]string, len(exercises))
	copy(out, exercises)
	if !IsLowEquipment(equipmentAccess) {
		return out
	}
	for i, name := range out {
		if sub, ok := lowEquipmentSubstitutions[name]; ok {
			out[i] = sub
		}
	}
	return out
}
