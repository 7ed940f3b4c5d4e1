package repository

import (
	"time"

	"deltapi/internal/app/ds"

	"gorm.io/gorm"
)

// Filtres de liste des paiements ; zéro = non appliqué
type PaiementFilter struct {
	EtudiantID uint
	GroupeID   uint
	NiveauID   uint
	FiliereID  uint
	Mois       string // AAAA-MM
	DateDebut  *time.Time
	DateFin    *time.Time
}

func (r *Repository) paiementQuery() *gorm.DB {
	return r.db.
		Preload("Etudiant").
		Preload("Groupe").
		Preload("Groupe.Niveau").
		Preload("Groupe.Filiere").
		Preload("Groupe.Professeurs").
		Preload("Groupe.Matieres")
}

func (r *Repository) GetAllPaiements(filter PaiementFilter) ([]ds.Paiement, error) {
	q := r.paiementQuery()

	if filter.EtudiantID != 0 {
		q = q.Where("etudiant_id = ?", filter.EtudiantID)
	}
	if filter.GroupeID != 0 {
		q = q.Where("groupe_id = ?", filter.GroupeID)
	}
	if filter.NiveauID != 0 {
		q = q.Where("groupe_id IN (?)", r.db.Model(&ds.Groupe{}).Select("id").Where("niveau_id = ?", filter.NiveauID))
	}
	if filter.FiliereID != 0 {
		q = q.Where("groupe_id IN (?)", r.db.Model(&ds.Groupe{}).Select("id").Where("filiere_id = ?", filter.FiliereID))
	}
	if filter.Mois != "" {
		q = q.Where("mois_paiement = ?", filter.Mois)
	}
	if filter.DateDebut != nil {
		q = q.Where("date_paiement >= ?", *filter.DateDebut)
	}
	if filter.DateFin != nil {
		q = q.Where("date_paiement <= ?", *filter.DateFin)
	}

	var paiements []ds.Paiement
	err := q.Order("date_paiement DESC").Find(&paiements).Error
	return paiements, err
}

func (r *Repository) GetPaiementByID(id uint) (*ds.Paiement, error) {
	var paiement ds.Paiement
	err := r.paiementQuery().First(&paiement, id).Error
	if err != nil {
		return nil, err
	}
	return &paiement, nil
}

// CreatePaiementAvecCommissions persiste le paiement et ses lignes de
// commission dans une même transaction : tout ou rien
func (r *Repository) CreatePaiementAvecCommissions(paiement *ds.Paiement, commissions []ds.Commission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(paiement).Error; err != nil {
			return err
		}
		for i := range commissions {
			commissions[i].PaiementID = paiement.ID
			if err := tx.Create(&commissions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CompleterPaiement ajoute un versement à un paiement partiel et recalcule
// le restant et le statut
func (r *Repository) CompleterPaiement(id uint, montant float64) (*ds.Paiement, error) {
	var paiement ds.Paiement
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&paiement, id).Error; err != nil {
			return err
		}
		paiement.Montant += montant
		paiement.Remaining = paiement.MontantTotal - paiement.Montant
		if paiement.Remaining <= 0 {
			paiement.Remaining = 0
			paiement.StatutPaiement = ds.StatutPaiementPaye
		}
		return tx.Save(&paiement).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetPaiementByID(paiement.ID)
}

// SetRecuObjet enregistre le nom de l'objet MinIO du reçu archivé
func (r *Repository) SetRecuObjet(id uint, objectName string) error {
	return r.db.Model(&ds.Paiement{}).Where("id = ?", id).
		Update("recu_objet", objectName).Error
}

func (r *Repository) DeletePaiement(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("paiement_id = ?", id).Delete(&ds.Commission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Paiement{}, id).Error
	})
}
