package main

import (
	"encoding/json"
	"strings"
	"time"

	"lg/gym-plan-go-api/planner"
)

// Plan sources recorded with every stored plan.
const (
	planSourceAI        = "ai"
	planSourceRuleBased = "rule_based"
)

/* ─── Request structs ────────────────────────────────────────────────── */

// profileRequest is the profile part of POST /api/account and the whole body
// of POST /api/plan/preview. Injuries and notes only reach the AI prompt and
// storage; the rule-based planner ignores them.
type profileRequest struct {
	FullName           string  `json:"fullName"           validate:"required"`
	Age                int     `json:"age"                validate:"required,min=13,max=90"`
	Sex                string  `json:"sex"                validate:"required,oneof=male female"`
	WeightKg           float64 `json:"weightKg"           validate:"required,min=30,max=300"`
	HeightCm           float64 `json:"heightCm"           validate:"required,min=120,max=230"`
	Goal               string  `json:"goal"               validate:"required,oneof=fat_loss muscle_gain recomposition maintenance"`
	ActivityLevel      string  `json:"activityLevel"      validate:"required,oneof=sedentary light moderate active athlete"`
	WorkoutDays        int     `json:"workoutDays"        validate:"required,min=2,max=6"`
	DietaryPreferences string  `json:"dietaryPreferences"`
	EquipmentAccess    string  `json:"equipmentAccess"`
	Injuries           string  `json:"injuries"`
	Notes              string  `json:"notes"`
}

// accountRequest is the request body for POST /api/account.
type accountRequest struct {
	Email string `json:"email" validate:"required,email"`
	profileRequest
}

// foodLogRequest is the request body for POST /api/account/:account/food-log.
type foodLogRequest struct {
	MealName     string `json:"mealName"     validate:"required"`
	Calories     int    `json:"calories"     validate:"min=0"`
	ProteinGrams int    `json:"proteinGrams" validate:"min=0"`
	CarbsGrams   int    `json:"carbsGrams"   validate:"min=0"`
	FatsGrams    int    `json:"fatsGrams"    validate:"min=0"`
	Notes        string `json:"notes"`
}

// normalize trims free text and lowercases the enum-like fields so "Male" and
// " fat_loss" validate.
func (r *profileRequest) normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Sex = strings.ToLower(strings.TrimSpace(r.Sex))
	r.Goal = strings.ToLower(strings.TrimSpace(r.Goal))
	r.ActivityLevel = strings.ToLower(strings.TrimSpace(r.ActivityLevel))
	r.DietaryPreferences = strings.TrimSpace(r.DietaryPreferences)
	r.EquipmentAccess = strings.TrimSpace(r.EquipmentAccess)
	r.Injuries = strings.TrimSpace(r.Injuries)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *accountRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.profileRequest.normalize()
}

func (r *foodLogRequest) normalize() {
	r.MealName = strings.TrimSpace(r.MealName)
	r.Notes = strings.TrimSpace(r.Notes)
}

// toProfile converts a validated request into the planner input.
func (r profileRequest) toProfile() planner.Profile {
	return planner.Profile{
		FullName:           r.FullName,
		Age:                r.Age,
		Sex:                planner.Sex(r.Sex),
		WeightKg:           r.WeightKg,
		HeightCm:           r.HeightCm,
		Goal:               planner.Goal(r.Goal),
		ActivityLevel:      planner.ActivityLevel(r.ActivityLevel),
		WorkoutDays:        r.WorkoutDays,
		DietaryPreferences: r.DietaryPreferences,
		EquipmentAccess:    r.EquipmentAccess,
	}
}

/* ─── Response structs ───────────────────────────────────────────────── */

// accountResponse is the response shape for POST /api/account. IDs are null
// when the API runs without a database. AccessToken is only returned when
// the account is created.
type accountResponse struct {
	Source      string       `json:"source"`
	Persisted   bool         `json:"persisted"`
	AccountID   *int         `json:"accountId"`
	ProfileID   *int         `json:"profileId"`
	PlanID      *int         `json:"planId"`
	AccessToken string       `json:"accessToken,omitempty"`
	Plan        planner.Plan `json:"plan"`
}

// accountDashboard is the response shape for GET /api/account/:account.
// Profile and Plan are null until the account has one.
type accountDashboard struct {
	Account  account         `json:"account"`
	Profile  *accountProfile `json:"profile"`
	Plan     *storedPlan     `json:"plan"`
	FoodLogs []foodLog       `json:"foodLogs"`
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// account maps to app_accounts. TokenHash is hidden from JSON responses.
type account struct {
	ID        int        `json:"id"         db:"id"`
	Email     string     `json:"email"      db:"email"`
	FullName  string     `json:"full_name"  db:"full_name"`
	TokenHash string     `json:"-"          db:"token_hash"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// accountProfile maps to account_profiles. A new row is written for every
// plan request so the history of inputs is kept.
type accountProfile struct {
	ID                 int        `json:"id"                  db:"id"`
	AccountID          int        `json:"account_id"          db:"account_id"`
	Age                int        `json:"age"                 db:"age"`
	Sex                string     `json:"sex"                 db:"sex"`
	WeightKg           float64    `json:"weight_kg"           db:"weight_kg"`
	HeightCm           float64    `json:"height_cm"           db:"height_cm"`
	Goal               string     `json:"goal"                db:"goal"`
	ActivityLevel      string     `json:"activity_level"      db:"activity_level"`
	WorkoutDays        int        `json:"workout_days"        db:"workout_days"`
	DietaryPreferences string     `json:"dietary_preferences" db:"dietary_preferences"`
	EquipmentAccess    string     `json:"equipment_access"    db:"equipment_access"`
	Injuries           string     `json:"injuries"            db:"injuries"`
	Notes              string     `json:"notes"               db:"notes"`
	CreatedAt          *time.Time `json:"created_at"          db:"created_at"`
}

// storedPlan maps to account_plans. PlanJSON is passed through untouched so
// AI plans with extra keys survive the round trip.
type storedPlan struct {
	ID        int             `json:"id"         db:"id"`
	AccountID int             `json:"account_id" db:"account_id"`
	ProfileID int             `json:"profile_id" db:"profile_id"`
	Source    string          `json:"source"     db:"source"`
	PlanJSON  json.RawMessage `json:"plan_json"  db:"plan_json"`
	CreatedAt *time.Time      `json:"created_at" db:"created_at"`
}

// foodLog maps to food_logs.
type foodLog struct {
	ID           int        `json:"id"            db:"id"`
	AccountID    int        `json:"account_id"    db:"account_id"`
	MealName     string     `json:"meal_name"     db:"meal_name"`
	Calories     int        `json:"calories"      db:"calories"`
	ProteinGrams int        `json:"protein_grams" db:"protein_grams"`
	CarbsGrams   int        `json:"carbs_grams"   db:"carbs_grams"`
	FatsGrams    int        `json:"fats_grams"    db:"fats_grams"`
	Notes        string     `json:"notes"         db:"notes"`
	CreatedAt    *time.Time `json:"created_at"    db:"created_at"`
}
