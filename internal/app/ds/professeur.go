package ds

import "time"

// Table des professeurs
type Professeur struct {
	ID            uint      `gorm:"primaryKey"`
	Nom           string    `gorm:"type:varchar(100);not null"`
	Prenom        string    `gorm:"type:varchar(100);not null"`
	DateNaissance time.Time `gorm:"type:date"`
	Telephone     string    `gorm:"type:varchar(30)"`
	Adresse       string    `gorm:"type:varchar(255)"`
	Sexe          string    `gorm:"type:varchar(1)"`
	Nationalite   string    `gorm:"type:varchar(50)"`
	Specialite    string    `gorm:"type:varchar(100)"`
	// Commission fixe par étudiant, utilisée quand le paiement ne porte pas de pourcentage
	CommissionFixe float64   `gorm:"type:decimal(10,2);default:0"`
	CreatedAt      time.Time `gorm:"not null"`

	Groupes []Groupe `gorm:"many2many:groupe_professeurs"`
}
