package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a pre-computed bcrypt hash used when an account isn't found.
// Running bcrypt against it (instead of returning early) keeps response time
// constant, preventing timing-based account enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// newAccessToken returns a fresh account access token and the bcrypt hash that
// gets stored in its place. The plain token is only ever shown once.
func newAccessToken() (token, hash string, err error) {
	token = uuid.New().String()
	h, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return token, string(h), nil
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// checkAccessToken compares the request's bearer token against hash. An empty
// hash (unknown account) is compared against dummyHash and always fails.
func checkAccessToken(c *gin.Context, hash string) bool {
	token, ok := bearerToken(c)
	hashToCheck := string(dummyHash)
	if hash != "" {
		hashToCheck = hash
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(token))
	return ok && hash != "" && err == nil
}

// lookupAccount resolves an account by numeric id or, failing that, by email.
func (h *Handler) lookupAccount(ctx context.Context, ref string) (account, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		return queryOne[account](h.db, ctx,
			"SELECT * FROM app_accounts WHERE id = @id",
			pgx.NamedArgs{"id": id})
	}
	return queryOne[account](h.db, ctx,
		"SELECT * FROM app_accounts WHERE email = @email",
		pgx.NamedArgs{"email": strings.ToLower(strings.TrimSpace(ref))})
}

// accountAuthMiddleware resolves the :account path param and validates the
// Bearer token against that account's stored hash. Sets "account" and
// "account_id" on the context.
func (h *Handler) accountAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.db == nil {
			apiError(c, http.StatusNotFound, "Account not found.")
			c.Abort()
			return
		}
		if _, ok := bearerToken(c); !ok {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		acct, err := h.lookupAccount(c, c.Param("account"))
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusInternalServerError, "failed to look up account")
			c.Abort()
			return
		}
		// Always run bcrypt, even for unknown accounts.
		if !checkAccessToken(c, acct.TokenHash) {
			apiError(c, http.StatusUnauthorized, "invalid credentials")
			c.Abort()
			return
		}

		c.Set("account", acct)
		c.Set("account_id", acct.ID)
		c.Next()
	}
}
