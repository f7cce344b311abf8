package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/config"
	"github.com/pageza/nutrilog/backend/internal/service"
)

// issue_token prints a bearer token for local testing of the meal endpoints.
func main() {
	userFlag := flag.String("user", "", "user id (a new one is generated when empty)")
	username := flag.String("name", "dev", "username claim")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if config.IsProduction() {
		logrus.Fatal("refusing to issue tokens in production")
	}

	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			logrus.WithError(err).Fatal("invalid user id")
		}
	}

	token, err := service.NewTokenService(cfg.JWTSecret).GenerateToken(userID, *username)
	if err != nil {
		logrus.WithError(err).Fatal("failed to sign token")
	}
	fmt.Printf("user_id: %s\ntoken:   %s\n", userID, token)
}
