package planner

import (
	"fmt"
	"math"
	"strings"
)

// Meal is one entry of the meal structure: a protein target and a coaching note.
type Meal struct {
	Meal          string `json:"meal"`
	TargetProtein int    `json:"targetProtein"`
	Note          string `json:"note"`
}

// mealShares splits both calories and protein across the day.
var mealShares = []struct {
	name    string
	share   float64
	idea    string
	vegIdea string
	note    string
}{
	{"Breakfast", 0.25, "Egg scramble + toast + fruit", "Greek yogurt + oats + berries + nuts", "Protein + fiber first meal."},
	{"Lunch", 0.30, "Chicken rice bowl with mixed vegetables and avocado", "Tofu stir-fry with rice and mixed vegetables", "Largest carb meal near training window."},
	{"Dinner", 0.30, "Salmon, sweet potato, and broccoli", "Lentil pasta with tomato sauce and side salad", "Balanced plate and vegetables."},
	{"Snack", 0.15, "Lean beef wrap or Greek yogurt + granola", "Protein smoothie with banana, spinach, and soy milk", "High protein snack to hit daily target."},
}

var groceryList = []string{
	"Lean protein source",
	"Fruit + vegetables",
	"Whole grains",
	"Healthy fats",
	"Hydration/electrolytes",
}

// IsVegetarian is a substring heuristic over the free-text preferences, so
// "non-vegetarian" also matches.
func IsVegetarian(dietaryPreferences string) bool {
	return strings.Contains(strings.ToLower(dietaryPreferences), "vegetarian")
}

// MealIdeas returns four meal suggestions, each annotated with its share of
// targetCalories.
func MealIdeas(dietaryPreferences string, targetCalories int) []string {
	vegetarian := IsVegetarian(dietaryPreferences)
	ideas := make([]string, 0, len(mealShares))
	for _, m := range mealShares {
		idea := m.idea
		if vegetarian {
			idea = m.vegIdea
		}
		kcal := int(math.Round(float64(targetCalories) * m.share))
		ideas = append(ideas, fmt.Sprintf("%s (~%d kcal): %s", m.name, kcal, idea))
	}
	return ideas
}

// MealStructure spreads the daily protein target over four meals.
func MealStructure(macros Macros) []Meal {
	meals := make([]Meal, 0, len(mealShares))
	for _, m := range mealShares {
		meals = append(meals, Meal{
			Meal:          m.name,
			TargetProtein: int(math.Round(float64(macros.ProteinGrams) * m.share)),
			Note:          m.note,
		})
	}
	return meals
}

// GroceryList is the same for every profile.
func GroceryList() []string {
	return append([]string(nil), groceryList...)
}
