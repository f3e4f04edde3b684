// CLI tool to issue a fresh access token for an existing account. The old
// token stops working immediately; only the bcrypt hash is stored.
// Usage: go run ./cmd/reset-token
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Account email: ")
	email, _ := reader.ReadString('\n')
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		fmt.Fprintln(os.Stderr, "Email is required.")
		os.Exit(1)
	}

	token := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing token: %v\n", err)
		os.Exit(1)
	}

	var accountID int
	err = conn.QueryRow(ctx,
		`UPDATE app_accounts SET token_hash = $1, updated_at = NOW()
		 WHERE email = $2 RETURNING id`,
		string(hash), email,
	).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		fmt.Fprintf(os.Stderr, "No account with email %s\n", email)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating account: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nAccess token reset.\n")
	fmt.Printf("  Account ID:   %d\n", accountID)
	fmt.Printf("  Email:        %s\n", email)
	fmt.Printf("  Access Token: %s\n", token)
}
