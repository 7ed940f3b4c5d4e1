package repository

import (
	"time"

	"deltapi/internal/app/ds"

	"gorm.io/gorm"
)

// Filtres de liste des commissions ; zéro = non appliqué
type CommissionFilter struct {
	ProfesseurID uint
	GroupeID     uint
	NiveauID     uint
	FiliereID    uint
	Mois         string
	DateDebut    *time.Time
	DateFin      *time.Time
}

func (r *Repository) commissionQuery() *gorm.DB {
	return r.db.
		Preload("Professeur").
		Preload("Etudiant").
		Preload("Groupe").
		Preload("Groupe.Niveau").
		Preload("Groupe.Filiere")
}

func (r *Repository) GetAllCommissions(filter CommissionFilter) ([]ds.Commission, error) {
	q := r.commissionQuery()

	if filter.ProfesseurID != 0 {
		q = q.Where("professeur_id = ?", filter.ProfesseurID)
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
		q = q.Where("date_commission >= ?", *filter.DateDebut)
	}
	if filter.DateFin != nil {
		q = q.Where("date_commission <= ?", *filter.DateFin)
	}

	var commissions []ds.Commission
	err := q.Order("date_commission DESC").Find(&commissions).Error
	return commissions, err
}

func (r *Repository) GetCommissionByID(id uint) (*ds.Commission, error) {
	var commission ds.Commission
	err := r.commissionQuery().First(&commission, id).Error
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

// MarquerCommissionPayee passe une commission au statut PAID
func (r *Repository) MarquerCommissionPayee(id uint) (*ds.Commission, error) {
	if err := r.db.Model(&ds.Commission{}).Where("id = ?", id).
		Update("statut_commission", ds.StatutCommissionPayee).Error; err != nil {
		return nil, err
	}
	return r.GetCommissionByID(id)
}
