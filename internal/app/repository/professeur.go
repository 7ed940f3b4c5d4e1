package repository

import (
	"deltapi/internal/app/ds"
)

// Méthodes pour les professeurs (ORM)

func (r *Repository) GetAllProfesseurs() ([]ds.Professeur, error) {
	var professeurs []ds.Professeur
	err := r.db.Order("created_at DESC").Find(&professeurs).Error
	return professeurs, err
}

func (r *Repository) GetProfesseurByID(id uint) (*ds.Professeur, error) {
	var professeur ds.Professeur
	if err := r.db.First(&professeur, id).Error; err != nil {
		return nil, err
	}
	return &professeur, nil
}

// GetProfesseurDetails charge le professeur avec ses groupes et ses commissions
func (r *Repository) GetProfesseurDetails(id uint) (*ds.Professeur, []ds.Commission, error) {
	var professeur ds.Professeur
	err := r.db.
		Preload("Groupes").
		Preload("Groupes.Niveau").
		Preload("Groupes.Filiere").
		First(&professeur, id).Error
	if err != nil {
		return nil, nil, err
	}

	var commissions []ds.Commission
	err = r.db.
		Preload("Etudiant").
		Preload("Groupe").
		Preload("Groupe.Niveau").
		Preload("Groupe.Filiere").
		Preload("Professeur").
		Where("professeur_id = ?", id).
		Order("date_commission DESC").
		Find(&commissions).Error
	if err != nil {
		return nil, nil, err
	}

	return &professeur, commissions, nil
}

func (r *Repository) CreateProfesseur(professeur *ds.Professeur) error {
	return r.db.Create(professeur).Error
}

func (r *Repository) UpdateProfesseur(professeur *ds.Professeur) error {
	return r.db.Save(professeur).Error
}

func (r *Repository) DeleteProfesseur(id uint) error {
	return r.db.Select("Groupes").Delete(&ds.Professeur{ID: id}).Error
}

// CountEtudiantsInGroupe compte les inscrits d'un groupe via la table de liaison
func (r *Repository) CountEtudiantsInGroupe(groupeID uint) (int, error) {
	var count int64
	err := r.db.Table("groupe_etudiants").Where("groupe_id = ?", groupeID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
