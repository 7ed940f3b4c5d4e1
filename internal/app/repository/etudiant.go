package repository

import (
	"deltapi/internal/app/ds"
)

// Méthodes pour les étudiants (ORM)

func (r *Repository) GetAllEtudiants() ([]ds.Etudiant, error) {
	var etudiants []ds.Etudiant
	err := r.db.Order("created_at DESC").Find(&etudiants).Error
	return etudiants, err
}

// GetEtudiantDetails charge l'étudiant avec ses groupes (référentiels inclus)
// et l'historique de ses paiements
func (r *Repository) GetEtudiantDetails(id uint) (*ds.Etudiant, []ds.Paiement, error) {
	var etudiant ds.Etudiant
	err := r.db.
		Preload("Groupes").
		Preload("Groupes.Niveau").
		Preload("Groupes.Filiere").
		Preload("Groupes.Professeurs").
		Preload("Groupes.Matieres").
		First(&etudiant, id).Error
	if err != nil {
		return nil, nil, err
	}

	var paiements []ds.Paiement
	err = r.db.
		Preload("Etudiant").
		Preload("Groupe").
		Preload("Groupe.Niveau").
		Preload("Groupe.Filiere").
		Where("etudiant_id = ?", id).
		Order("date_paiement DESC").
		Find(&paiements).Error
	if err != nil {
		return nil, nil, err
	}

	return &etudiant, paiements, nil
}

func (r *Repository) CreateEtudiant(etudiant *ds.Etudiant) error {
	return r.db.Create(etudiant).Error
}

func (r *Repository) UpdateEtudiant(etudiant *ds.Etudiant) error {
	return r.db.Save(etudiant).Error
}

func (r *Repository) GetEtudiantByID(id uint) (*ds.Etudiant, error) {
	var etudiant ds.Etudiant
	if err := r.db.First(&etudiant, id).Error; err != nil {
		return nil, err
	}
	return &etudiant, nil
}

func (r *Repository) DeleteEtudiant(id uint) error {
	return r.db.Select("Groupes").Delete(&ds.Etudiant{ID: id}).Error
}

// AddEtudiantToGroupe inscrit un étudiant dans un groupe (table de liaison)
func (r *Repository) AddEtudiantToGroupe(etudiantID, groupeID uint) error {
	etudiant, err := r.GetEtudiantByID(etudiantID)
	if err != nil {
		return err
	}
	groupe, err := r.GetGroupeByID(groupeID)
	if err != nil {
		return err
	}
	return r.db.Model(etudiant).Association("Groupes").Append(groupe)
}
