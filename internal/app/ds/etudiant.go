package ds

import "time"

// Table des étudiants
type Etudiant struct {
	ID             uint      `gorm:"primaryKey"`
	Nom            string    `gorm:"type:varchar(100);not null"`
	Prenom         string    `gorm:"type:varchar(100);not null"`
	DateNaissance  time.Time `gorm:"type:date"`
	Telephone      string    `gorm:"type:varchar(30)"`
	Adresse        string    `gorm:"type:varchar(255)"`
	Sexe           string    `gorm:"type:varchar(1)"` // M, F
	Nationalite    string    `gorm:"type:varchar(50)"`
	ContactUrgence string    `gorm:"type:varchar(30)"`
	CreatedAt      time.Time `gorm:"not null"`

	Groupes []Groupe `gorm:"many2many:groupe_etudiants"`
}
