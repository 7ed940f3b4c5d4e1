package ds

// Table des utilisateurs du tableau de bord
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	FullName string `gorm:"type:varchar(100)"`
	IsAdmin  bool   `gorm:"type:boolean;default:false;not null"`
}
