package repository

import (
	"deltapi/internal/app/ds"
)

// Méthodes pour les groupes (ORM)

func (r *Repository) GetAllGroupes() ([]ds.Groupe, error) {
	var groupes []ds.Groupe
	err := r.db.
		Preload("Niveau").
		Preload("Filiere").
		Preload("Professeurs").
		Preload("Matieres").
		Order("created_at DESC").
		Find(&groupes).Error
	return groupes, err
}

func (r *Repository) GetGroupeByID(id uint) (*ds.Groupe, error) {
	var groupe ds.Groupe
	err := r.db.
		Preload("Niveau").
		Preload("Filiere").
		Preload("Professeurs").
		Preload("Matieres").
		First(&groupe, id).Error
	if err != nil {
		return nil, err
	}
	return &groupe, nil
}

// CreateGroupe crée le groupe et rattache professeurs et matières
func (r *Repository) CreateGroupe(groupe *ds.Groupe, professeurIDs, matiereIDs []uint) error {
	if len(professeurIDs) > 0 {
		var professeurs []ds.Professeur
		if err := r.db.Find(&professeurs, professeurIDs).Error; err != nil {
			return err
		}
		groupe.Professeurs = professeurs
	}
	if len(matiereIDs) > 0 {
		var matieres []ds.Matiere
		if err := r.db.Find(&matieres, matiereIDs).Error; err != nil {
			return err
		}
		groupe.Matieres = matieres
	}
	return r.db.Create(groupe).Error
}

func (r *Repository) UpdateGroupe(groupe *ds.Groupe, professeurIDs, matiereIDs []uint) error {
	if err := r.db.Save(groupe).Error; err != nil {
		return err
	}

	var professeurs []ds.Professeur
	if len(professeurIDs) > 0 {
		if err := r.db.Find(&professeurs, professeurIDs).Error; err != nil {
			return err
		}
	}
	if err := r.db.Model(groupe).Association("Professeurs").Replace(professeurs); err != nil {
		return err
	}

	var matieres []ds.Matiere
	if len(matiereIDs) > 0 {
		if err := r.db.Find(&matieres, matiereIDs).Error; err != nil {
			return err
		}
	}
	return r.db.Model(groupe).Association("Matieres").Replace(matieres)
}

func (r *Repository) DeleteGroupe(id uint) error {
	return r.db.Select("Professeurs", "Matieres", "Etudiants").Delete(&ds.Groupe{ID: id}).Error
}
