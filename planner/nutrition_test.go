package planner

import (
	"slices"
	"strings"
	"testing"
)

func TestIsVegetarian(t *testing.T) {
	tests := []struct {
		prefs string
		want  bool
	}{
		{"", false},
		{"no dairy", false},
		{"vegetarian", true},
		{"Lacto-Vegetarian", true},
	}
	for _, tt := range tests {
		if got := IsVegetarian(tt.prefs); got != tt.want {
			t.Errorf("IsVegetarian(%q) = %v, want %v", tt.prefs, got, tt.want)
		}
	}
}

func TestMealIdeas_CalorieShares(t *testing.T) {
	got := MealIdeas("", 2359)
	want := []string{
		"Breakfast (~590 kcal): Egg scramble + toast + fruit",
		"Lunch (~708 kcal): Chicken rice bowl with mixed vegetables and avocado",
		"Dinner (~708 kcal): Salmon, sweet potato, and broccoli",
		"Snack (~354 kcal): Lean beef wrap or Greek yogurt + granola",
	}
	if !slices.Equal(got, want) {
		t.Errorf("MealIdeas() =\n%v\nwant\n%v", got, want)
	}
}

func TestMealIdeas_VegetarianHasNoMeatOrFish(t *testing.T) {
	ideas := MealIdeas("vegetarian", 2000)
	if len(ideas) != 4 {
		t.Fatalf("got %d ideas, want 4", len(ideas))
	}
	for _, idea := range ideas {
		lower := strings.ToLower(idea)
		for _, term := range []string{"chicken", "beef", "salmon", "fish", "pork", "turkey", "tuna"} {
			if strings.Contains(lower, term) {
				t.Errorf("vegetarian idea %q mentions %s", idea, term)
			}
		}
	}
	if !strings.Contains(ideas[1], "Tofu stir-fry") {
		t.Errorf("lunch = %q, want the tofu stir-fry", ideas[1])
	}
}

func TestMealStructure(t *testing.T) {
	got := MealStructure(Macros{ProteinGrams: 206})
	wantProtein := []int{52, 62, 62, 31}
	wantMeals := []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	if len(got) != 4 {
		t.Fatalf("got %d meals, want 4", len(got))
	}
	for i, m := range got {
		if m.Meal != wantMeals[i] || m.TargetProtein != wantProtein[i] || m.Note == "" {
			t.Errorf("meal %d = %+v, want %s with %dg", i, m, wantMeals[i], wantProtein[i])
		}
	}
}

func TestGroceryList_IsACopy(t *testing.T) {
	list := GroceryList()
	if len(list) != 5 || list[0] != "Lean protein source" {
		t.Fatalf("GroceryList() = %v", list)
	}
	list[0] = "changed"
	if GroceryList()[0] != "Lean protein source" {
		t.Error("GroceryList returned the shared slice")
	}
}
