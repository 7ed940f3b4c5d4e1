package ds

import "time"

const (
	StatutCommissionPayee    = "PAID"
	StatutCommissionNonPayee = "UNPAID"
)

// Table des commissions professeurs, une ligne par professeur crédité sur un paiement
type Commission struct {
	ID               uint      `gorm:"primaryKey"`
	Montant          float64   `gorm:"type:decimal(10,2);not null"`
	DateCommission   time.Time `gorm:"not null"`
	MoisPaiement     string    `gorm:"type:varchar(7)"`
	StatutCommission string    `gorm:"type:varchar(20);not null"` // PAID, UNPAID
	PaiementID       uint      `gorm:"not null;index"`
	ProfesseurID     uint      `gorm:"not null;index"`
	EtudiantID       uint      `gorm:"not null;index"`
	GroupeID         uint      `gorm:"not null;index"`

	Paiement   Paiement   `gorm:"foreignKey:PaiementID"`
	Professeur Professeur `gorm:"foreignKey:ProfesseurID"`
	Etudiant   Etudiant   `gorm:"foreignKey:EtudiantID"`
	Groupe     Groupe     `gorm:"foreignKey:GroupeID"`
}
