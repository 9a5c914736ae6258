package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"flightline/opsdeck/internal/config"
	"flightline/opsdeck/internal/db"
	"flightline/opsdeck/internal/db/repositories"
	gormModels "flightline/opsdeck/internal/models/gorm"

	"github.com/google/uuid"
)

// Generates an API key for an existing user and prints it once.
func main() {
	userID := flag.String("user", "", "user UUID the key belongs to")
	flag.Parse()

	if *userID == "" {
		log.Fatal("usage: api_key_gen -user <user-uuid>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := db.InitPostgres(cfg.Postgres.DSN()); err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.DB.Close()

	orm, err := db.InitPostgresORM(cfg.Postgres.DSN())
	if err != nil {
		log.Fatalf("open db (gorm): %v", err)
	}

	var user gormModels.User
	if err := orm.Where("id = ?", *userID).First(&user).Error; err != nil {
		log.Fatalf("look up user %s: %v", *userID, err)
	}
	if !user.IsActive {
		log.Fatalf("user %s is deactivated, refusing to mint a key", *userID)
	}

	keysRepo := repositories.NewApiKeysRepo(db.DB)

	key := uuid.New().String()
	rec, err := keysRepo.Insert(context.Background(), key, *userID)
	if err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key for", user.Email+":", rec.Key)
}
