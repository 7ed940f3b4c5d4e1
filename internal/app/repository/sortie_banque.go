package repository

import (
	"deltapi/internal/app/ds"
)

// Méthodes pour les sorties banque (ORM)

func (r *Repository) GetAllSortiesBanque() ([]ds.SortieBanque, error) {
	var sorties []ds.SortieBanque
	err := r.db.Order("date DESC").Find(&sorties).Error
	return sorties, err
}

func (r *Repository) GetSortieBanqueByID(id uint) (*ds.SortieBanque, error) {
	var sortie ds.SortieBanque
	if err := r.db.First(&sortie, id).Error; err != nil {
		return nil, err
	}
	return &sortie, nil
}

func (r *Repository) CreateSortieBanque(sortie *ds.SortieBanque) error {
	return r.db.Create(sortie).Error
}

func (r *Repository) UpdateSortieBanque(sortie *ds.SortieBanque) error {
	return r.db.Save(sortie).Error
}

func (r *Repository) DeleteSortieBanque(id uint) error {
	return r.db.Delete(&ds.SortieBanque{}, id).Error
}
