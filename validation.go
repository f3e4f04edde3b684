package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks request structs via their `validate` tags. Field names in
// errors are the JSON names so messages match what the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// fieldMessages are the user-facing messages for range and enum failures.
var fieldMessages = map[string]string{
	"email":         "Valid email is required.",
	"age":           "Age must be between 13 and 90.",
	"weightKg":      "Weight must be between 30kg and 300kg.",
	"heightCm":      "Height must be between 120cm and 230cm.",
	"workoutDays":   "Workout days must be between 2 and 6.",
	"sex":           "Sex must be one of: male, female.",
	"goal":          "Goal must be one of: fat_loss, muscle_gain, recomposition, maintenance.",
	"activityLevel": "Activity level must be one of: sedentary, light, moderate, active, athlete.",
	"calories":      "Calories must be zero or more.",
	"proteinGrams":  "Protein grams must be zero or more.",
	"carbsGrams":    "Carbs grams must be zero or more.",
	"fatsGrams":     "Fats grams must be zero or more.",
}

// requiredMessages override the "Missing fields" form for single-field bodies.
var requiredMessages = map[string]string{
	"mealName": "Meal name is required.",
}

// validationMessage turns a validator error into one message. Missing fields
// are reported together, before any range errors.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			continue
		}
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		missing = append(missing, fe.Field())
	}
	if len(missing) > 0 {
		return "Missing fields: " + strings.Join(missing, ", ")
	}

	fe := verrs[0]
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}
