package repository

import (
	"deltapi/internal/app/ds"
)

// Méthodes pour les dépenses (ORM)

func (r *Repository) GetAllDepenses() ([]ds.Depense, error) {
	var depenses []ds.Depense
	err := r.db.Order("date DESC").Find(&depenses).Error
	return depenses, err
}

func (r *Repository) GetDepenseByID(id uint) (*ds.Depense, error) {
	var depense ds.Depense
	if err := r.db.First(&depense, id).Error; err != nil {
		return nil, err
	}
	return &depense, nil
}

func (r *Repository) CreateDepense(depense *ds.Depense) error {
	return r.db.Create(depense).Error
}

func (r *Repository) UpdateDepense(depense *ds.Depense) error {
	return r.db.Save(depense).Error
}

func (r *Repository) DeleteDepense(id uint) error {
	return r.db.Delete(&ds.Depense{}, id).Error
}
