package main

import (
	"fmt"
	"log"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Vérification rapide du contenu de la base en local
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var groupes []ds.Groupe
	if err := db.Preload("Niveau").Preload("Filiere").Find(&groupes).Error; err != nil {
		log.Fatal("Failed to get groups:", err)
	}

	fmt.Println("Groupes en base :")
	for _, g := range groupes {
		fmt.Printf("ID: %d, Nom: %s, Niveau: %s, Filière: %s, Prix: %.2f MAD\n",
			g.ID, g.NomGroupe, g.Niveau.NomNiveau, g.Filiere.NomFiliere, g.PrixSubscription)
	}
}
