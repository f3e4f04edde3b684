// CLI tool to print the rule-based plan for a profile without running the API.
// Reads profile JSON from the file argument, or stdin when none is given.
// Usage: go run ./cmd/plan profile.json
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"lg/gym-plan-go-api/planner"
)

func main() {
	in := io.Reader(os.Stdin)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run decodes one profile from r, checks it and writes the indented plan to w.
func run(r io.Reader, w io.Writer) error {
	var p planner.Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}
	p.Sex = planner.Sex(strings.ToLower(strings.TrimSpace(string(p.Sex))))
	p.Goal = planner.Goal(strings.ToLower(strings.TrimSpace(string(p.Goal))))
	p.ActivityLevel = planner.ActivityLevel(strings.ToLower(strings.TrimSpace(string(p.ActivityLevel))))

	if err := checkProfile(p); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(planner.Build(p))
}

// checkProfile applies the same ranges the API enforces.
func checkProfile(p planner.Profile) error {
	v := validator.New()
	checks := []struct {
		name  string
		value any
		tag   string
	}{
		{"age", p.Age, "min=13,max=90"},
		{"sex", string(p.Sex), "oneof=male female"},
		{"weightKg", p.WeightKg, "min=30,max=300"},
		{"heightCm", p.HeightCm, "min=120,max=230"},
		{"goal", string(p.Goal), "oneof=fat_loss muscle_gain recomposition maintenance"},
		{"activityLevel", string(p.ActivityLevel), "oneof=sedentary light moderate active athlete"},
		{"workoutDays", p.WorkoutDays, "min=2,max=6"},
	}
	for _, c := range checks {
		if err := v.Var(c.value, c.tag); err != nil {
			return fmt.Errorf("%s: %v is out of range (%s)", c.name, c.value, c.tag)
		}
	}
	return nil
}
