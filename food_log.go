package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// requireAccountID rejects food-log requests whose :account is not a positive
// integer id. Runs before auth so the message is the same with or without a
// database.
func requireAccountID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("account"))
		if err != nil || id <= 0 {
			apiError(c, http.StatusBadRequest, "Invalid account id.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// createFoodLog records a meal against the authenticated account.
// POST /api/account/:account/food-log
func (h *Handler) createFoodLog(c *gin.Context) {
	accountID := c.GetInt("account_id")

	var req foodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.normalize()
	if err := validate.Struct(req); err != nil {
		apiError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	entry, err := queryOne[foodLog](h.db, c,
		`INSERT INTO food_logs
		   (account_id, meal_name, calories, protein_grams, carbs_grams, fats_grams, notes)
		 VALUES
		   (@accountID, @mealName, @calories, @proteinGrams, @carbsGrams, @fatsGrams, @notes)
		 RETURNING *`,
		pgx.NamedArgs{
			"accountID":    accountID,
			"mealName":     req.MealName,
			"calories":     req.Calories,
			"proteinGrams": req.ProteinGrams,
			"carbsGrams":   req.CarbsGrams,
			"fatsGrams":    req.FatsGrams,
			"notes":        req.Notes,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "Failed to save food log.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": entry.ID, "persisted": true, "entry": entry})
}
