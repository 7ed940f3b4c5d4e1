package ds

// Référentiels : niveaux scolaires, filières et matières

type Niveau struct {
	ID        uint   `gorm:"primaryKey"`
	NomNiveau string `gorm:"type:varchar(100);unique;not null"`
}

type Filiere struct {
	ID         uint   `gorm:"primaryKey"`
	NomFiliere string `gorm:"type:varchar(100);unique;not null"`
}

type Matiere struct {
	ID         uint   `gorm:"primaryKey"`
	NomMatiere string `gorm:"type:varchar(100);unique;not null"`
}
