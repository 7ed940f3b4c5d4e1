package ds

import "time"

// Statuts stockés en base ; l'affichage français est dérivé côté reçu
const (
	StatutPaiementPartiel = "PARTIAL"
	StatutPaiementPaye    = "PAID"
)

// Table des paiements
type Paiement struct {
	ID      uint    `gorm:"primaryKey"`
	Montant float64 `gorm:"type:decimal(10,2);not null"`
	// Prix total dû, figé depuis le prix_subscription du groupe à la création
	MontantTotal     float64 `gorm:"type:decimal(10,2);not null"`
	Remaining        float64 `gorm:"type:decimal(10,2);default:0"`
	FraisInscription float64 `gorm:"type:decimal(10,2);default:0"`
	StatutPaiement   string  `gorm:"type:varchar(20);not null"` // PARTIAL, PAID
	// Mois couvert au format AAAA-MM, saisi par le caissier
	MoisPaiement         string    `gorm:"type:varchar(7)"`
	DatePaiement         time.Time `gorm:"not null"`
	EtudiantID           uint      `gorm:"not null;index"`
	GroupeID             uint      `gorm:"not null;index"`
	CommissionPercentage *float64  `gorm:"type:decimal(5,2);default:null"`
	// Nom de l'objet MinIO du reçu archivé ; vide tant que rien n'est archivé
	RecuObjet string `gorm:"type:varchar(100)"`

	Etudiant Etudiant `gorm:"foreignKey:EtudiantID"`
	Groupe   Groupe   `gorm:"foreignKey:GroupeID"`
}
