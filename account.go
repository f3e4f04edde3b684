package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"lg/gym-plan-go-api/planner"
)

// pgUniqueViolation is the Postgres error code for a unique constraint failure.
const pgUniqueViolation = "23505"

var errAccountExists = errors.New("account already exists")

// savedPlan holds the ids written by saveAccountAndPlan.
type savedPlan struct {
	AccountID int
	ProfileID int
	PlanID    int
}

// createAccount generates a plan for the posted profile and, when a database
// is configured, stores the account, profile and plan.
// POST /api/account
func (h *Handler) createAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.normalize()
	if err := validate.Struct(req); err != nil {
		apiError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	// An existing email may only get a new plan with its own token.
	var existing *account
	if h.db != nil {
		acct, err := queryOne[account](h.db, c,
			"SELECT * FROM app_accounts WHERE email = @email",
			pgx.NamedArgs{"email": req.Email})
		switch {
		case err == nil:
			if !checkAccessToken(c, acct.TokenHash) {
				apiError(c, http.StatusUnauthorized, "invalid credentials")
				return
			}
			existing = &acct
		case !errors.Is(err, pgx.ErrNoRows):
			apiError(c, http.StatusInternalServerError, "Failed to generate account plan.")
			return
		}
	}

	plan, source := h.generatePlan(c, req.profileRequest)

	resp := accountResponse{Source: source, Plan: plan}
	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	var token, tokenHash string
	if existing == nil {
		var err error
		token, tokenHash, err = newAccessToken()
		if err != nil {
			log.Printf("[createAccount] token error: %v", err)
			apiError(c, http.StatusInternalServerError, "Failed to generate account plan.")
			return
		}
	}

	saved, err := h.saveAccountAndPlan(c, req, existing, tokenHash, plan, source)
	if errors.Is(err, errAccountExists) {
		apiError(c, http.StatusConflict, "Account already exists.")
		return
	}
	if err != nil {
		log.Printf("[createAccount] save error: %v", err)
		apiError(c, http.StatusInternalServerError, "Failed to generate account plan.")
		return
	}

	resp.Persisted = true
	resp.AccountID = &saved.AccountID
	resp.ProfileID = &saved.ProfileID
	resp.PlanID = &saved.PlanID
	resp.AccessToken = token
	c.JSON(http.StatusOK, resp)
}

// saveAccountAndPlan writes the account (insert or name update), a new
// profile row and the plan in one transaction. tokenHash is only used when
// existing is nil.
func (h *Handler) saveAccountAndPlan(ctx context.Context, req accountRequest, existing *account, tokenHash string, plan planner.Plan, source string) (savedPlan, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return savedPlan{}, fmt.Errorf("marshal plan: %w", err)
	}

	var saved savedPlan
	err = pgx.BeginFunc(ctx, h.db, func(tx pgx.Tx) error {
		if existing != nil {
			saved.AccountID = existing.ID
			if _, err := tx.Exec(ctx,
				`UPDATE app_accounts SET full_name = @fullName, updated_at = NOW()
				 WHERE id = @id`,
				pgx.NamedArgs{"fullName": req.FullName, "id": existing.ID}); err != nil {
				return fmt.Errorf("update account: %w", err)
			}
		} else {
			err := tx.QueryRow(ctx,
				`INSERT INTO app_accounts (email, full_name, token_hash)
				 VALUES (@email, @fullName, @tokenHash) RETURNING id`,
				pgx.NamedArgs{"email": req.Email, "fullName": req.FullName, "tokenHash": tokenHash},
			).Scan(&saved.AccountID)
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return errAccountExists
			}
			if err != nil {
				return fmt.Errorf("insert account: %w", err)
			}
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO account_profiles
			   (account_id, age, sex, weight_kg, height_cm, goal, activity_level,
			    workout_days, dietary_preferences, equipment_access, injuries, notes)
			 VALUES
			   (@accountID, @age, @sex, @weightKg, @heightCm, @goal, @activityLevel,
			    @workoutDays, @dietaryPreferences, @equipmentAccess, @injuries, @notes)
			 RETURNING id`,
			pgx.NamedArgs{
				"accountID":          saved.AccountID,
				"age":                req.Age,
				"sex":                req.Sex,
				"weightKg":           req.WeightKg,
				"heightCm":           req.HeightCm,
				"goal":               req.Goal,
				"activityLevel":      req.ActivityLevel,
				"workoutDays":        req.WorkoutDays,
				"dietaryPreferences": req.DietaryPreferences,
				"equipmentAccess":    req.EquipmentAccess,
				"injuries":           req.Injuries,
				"notes":              req.Notes,
			},
		).Scan(&saved.ProfileID); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO account_plans (account_id, profile_id, source, plan_json)
			 VALUES (@accountID, @profileID, @source, @planJSON::jsonb)
			 RETURNING id`,
			pgx.NamedArgs{
				"accountID": saved.AccountID,
				"profileID": saved.ProfileID,
				"source":    source,
				"planJSON":  string(planJSON),
			},
		).Scan(&saved.PlanID); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}
		return nil
	})
	return saved, err
}

// getAccountDashboard returns the account with its latest profile and plan
// and its 20 most recent food logs.
// GET /api/account/:account
func (h *Handler) getAccountDashboard(c *gin.Context) {
	acct := c.MustGet("account").(account)
	args := pgx.NamedArgs{"accountID": acct.ID}

	dash := accountDashboard{Account: acct}

	profile, err := queryOne[accountProfile](h.db, c,
		`SELECT * FROM account_profiles WHERE account_id = @accountID
		 ORDER BY created_at DESC, id DESC LIMIT 1`, args)
	switch {
	case err == nil:
		dash.Profile = &profile
	case !errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusInternalServerError, "Failed to fetch account dashboard.")
		return
	}

	plan, err := queryOne[storedPlan](h.db, c,
		`SELECT * FROM account_plans WHERE account_id = @accountID
		 ORDER BY created_at DESC, id DESC LIMIT 1`, args)
	switch {
	case err == nil:
		dash.Plan = &plan
	case !errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusInternalServerError, "Failed to fetch account dashboard.")
		return
	}

	logs, err := queryMany[foodLog](h.db, c,
		`SELECT * FROM food_logs WHERE account_id = @accountID
		 ORDER BY created_at DESC, id DESC LIMIT 20`, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "Failed to fetch account dashboard.")
		return
	}
	// Ensure foodLogs is an empty array (not null) in JSON
	if logs == nil {
		logs = []foodLog{}
	}
	dash.FoodLogs = logs

	c.JSON(http.StatusOK, dash)
}
