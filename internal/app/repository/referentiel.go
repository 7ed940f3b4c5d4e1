package repository

import (
	"deltapi/internal/app/ds"
)

// Méthodes pour les référentiels (niveaux, filières, matières)

func (r *Repository) GetAllNiveaux() ([]ds.Niveau, error) {
	var niveaux []ds.Niveau
	err := r.db.Order("id").Find(&niveaux).Error
	return niveaux, err
}

func (r *Repository) CreateNiveau(nom string) (*ds.Niveau, error) {
	niveau := ds.Niveau{NomNiveau: nom}
	if err := r.db.Create(&niveau).Error; err != nil {
		return nil, err
	}
	return &niveau, nil
}

func (r *Repository) UpdateNiveau(id uint, nom string) (*ds.Niveau, error) {
	var niveau ds.Niveau
	if err := r.db.First(&niveau, id).Error; err != nil {
		return nil, err
	}
	niveau.NomNiveau = nom
	if err := r.db.Save(&niveau).Error; err != nil {
		return nil, err
	}
	return &niveau, nil
}

func (r *Repository) DeleteNiveau(id uint) error {
	return r.db.Delete(&ds.Niveau{}, id).Error
}

func (r *Repository) GetAllFilieres() ([]ds.Filiere, error) {
	var filieres []ds.Filiere
	err := r.db.Order("id").Find(&filieres).Error
	return filieres, err
}

func (r *Repository) CreateFiliere(nom string) (*ds.Filiere, error) {
	filiere := ds.Filiere{NomFiliere: nom}
	if err := r.db.Create(&filiere).Error; err != nil {
		return nil, err
	}
	return &filiere, nil
}

func (r *Repository) UpdateFiliere(id uint, nom string) (*ds.Filiere, error) {
	var filiere ds.Filiere
	if err := r.db.First(&filiere, id).Error; err != nil {
		return nil, err
	}
	filiere.NomFiliere = nom
	if err := r.db.Save(&filiere).Error; err != nil {
		return nil, err
	}
	return &filiere, nil
}

func (r *Repository) DeleteFiliere(id uint) error {
	return r.db.Delete(&ds.Filiere{}, id).Error
}

func (r *Repository) GetAllMatieres() ([]ds.Matiere, error) {
	var matieres []ds.Matiere
	err := r.db.Order("id").Find(&matieres).Error
	return matieres, err
}

func (r *Repository) CreateMatiere(nom string) (*ds.Matiere, error) {
	matiere := ds.Matiere{NomMatiere: nom}
	if err := r.db.Create(&matiere).Error; err != nil {
		return nil, err
	}
	return &matiere, nil
}

func (r *Repository) UpdateMatiere(id uint, nom string) (*ds.Matiere, error) {
	var matiere ds.Matiere
	if err := r.db.First(&matiere, id).Error; err != nil {
		return nil, err
	}
	matiere.NomMatiere = nom
	if err := r.db.Save(&matiere).Error; err != nil {
		return nil, err
	}
	return &matiere, nil
}

func (r *Repository) DeleteMatiere(id uint) error {
	return r.db.Delete(&ds.Matiere{}, id).Error
}
