package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Set properties of the predefined Logger, including
	// the log entry prefix and a flag to disable printing
	// the time, source file, and line number.
	log.SetPrefix("lg/gym-plan-go-api: ")
	log.SetFlags(0)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
		os.Exit(1)
	}

	pool, err := getDBPool(context.Background(), cfg.DBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start: %v\n", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
		fmt.Println("DB pool ready!")
	} else {
		fmt.Println("DB_URL not set, plans will not be persisted.")
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		fmt.Println("OPENAI_API_KEY not set, serving rule-based plans only.")
	}

	h := &Handler{
		db:            pool,
		openAIBaseURL: cfg.OpenAIBaseURL,
		openAIModel:   cfg.OpenAIModel,
		openAITimeout: cfg.OpenAITimeout,
	}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	// The browser UI is served from its own origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Gym planner API listening on port %s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
