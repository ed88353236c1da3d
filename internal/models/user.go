package models

type User struct {
	BaseModel
	Email             string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string       `gorm:"not null"`
	Subscription      Subscription `gorm:"type:varchar(20);not null;default:'starter'"`
	Token             *string      `gorm:"type:varchar(512)"`
	Verify            bool         `gorm:"not null;default:false"`
	VerificationToken *string      `gorm:"type:varchar(64);index"`
	AvatarURL         string       `gorm:"type:varchar(512)"`

	Contacts []Contact `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// HasToken reports whether token is the user's single live bearer token.
func (u *User) HasToken(token string) bool {
	return u.Token != nil && *u.Token != "" && *u.Token == token
}
