package ds

import "time"

// Table des dépenses de fonctionnement
type Depense struct {
	ID        uint      `gorm:"primaryKey"`
	Libele    string    `gorm:"type:varchar(255);not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Montant   float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time `gorm:"not null"`
}
