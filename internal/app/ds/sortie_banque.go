package ds

import "time"

// Modes de paiement acceptés pour une sortie banque
const (
	ModePaiementCheque   = "CHEQUE"
	ModePaiementVirement = "VIREMENT"
	ModePaiementEspeces  = "ESPECES"
	ModePaiementCarte    = "CARTE"
)

// Table des sorties banque (retraits)
type SortieBanque struct {
	ID           uint      `gorm:"primaryKey"`
	Date         time.Time `gorm:"type:date;not null"`
	ModePaiement string    `gorm:"type:varchar(20);not null"` // CHEQUE, VIREMENT, ESPECES, CARTE
	Montant      float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
