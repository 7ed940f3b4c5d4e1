package main

import (
	"log"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	err = db.AutoMigrate(
		&ds.User{},
		&ds.Niveau{},
		&ds.Filiere{},
		&ds.Matiere{},
		&ds.Professeur{},
		&ds.Etudiant{},
		&ds.Groupe{},
		&ds.Paiement{},
		&ds.Commission{},
		&ds.Depense{},
		&ds.SortieBanque{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")
}
