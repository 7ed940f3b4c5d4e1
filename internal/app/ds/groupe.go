package ds

import "time"

// Table des groupes de cours
type Groupe struct {
	ID          uint   `gorm:"primaryKey"`
	NomGroupe   string `gorm:"type:varchar(100);not null"`
	NiveauID    uint   `gorm:"not null"`
	FiliereID   uint   `gorm:"not null"`
	MaxEtudiants int   `gorm:"type:int;default:30"`
	// Prix mensuel d'abonnement, base du calcul des commissions
	PrixSubscription float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt        time.Time `gorm:"not null"`

	Niveau      Niveau       `gorm:"foreignKey:NiveauID"`
	Filiere     Filiere      `gorm:"foreignKey:FiliereID"`
	Professeurs []Professeur `gorm:"many2many:groupe_professeurs"`
	Matieres    []Matiere    `gorm:"many2many:groupe_matieres"`
	Etudiants   []Etudiant   `gorm:"many2many:groupe_etudiants"`
}
