package main

import (
	"context"
	"errors"
	"log"
	"time"

	"educonnect/config"
	"educonnect/database"
	"educonnect/models"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo accounts in the user registry",
	RunE:  runSeed,
}

const demoPassword = "educonnect"

func runSeed(cmd *cobra.Command, args []string) error {
	// seeding never signs tokens, a missing secret is fine
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNoSecret) {
		return err
	}

	if err := database.Connect(cfg.DataFile); err != nil {
		return err
	}
	defer database.Disconnect()

	demo := []models.User{
		{Email: "student@educonnect.dev", Name: "Demo Student", Title: "CS Student", Role: models.RoleStudent},
		{Email: "instructor@educonnect.dev", Name: "Demo Instructor", Title: "Senior Lecturer", Role: models.RoleInstructor},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, user := range demo {
		err := database.Users.FindOne(ctx, bson.M{"email": user.Email}).Err()
		if err == nil {
			log.Printf("%s already exists, skipping", user.Email)
			continue
		}
		if err != mongo.ErrNoDocuments {
			return err
		}

		now := time.Now().Unix()
		user.ID = primitive.NewObjectID()
		user.PasswordHash = &hashed
		user.CreatedAt = now
		user.LastSeen = now

		if _, err := database.Users.InsertOne(ctx, user); err != nil {
			return err
		}
		log.Printf("created %s (%s)", user.Email, user.Role)
	}

	log.Printf("demo password: %q", demoPassword)
	return nil
}
