package repository

import (
	"fmt"

	"deltapi/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Migration automatique de toutes les tables
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
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
