package models

type Contact struct {
	BaseModel
	Name     string `gorm:"type:varchar(50);not null"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(20)"`
	Favorite bool   `gorm:"not null;default:false"`
	OwnerID  string `gorm:"type:varchar(36);not null;index"`
}
