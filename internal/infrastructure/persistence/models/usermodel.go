package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:30;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Salt         string `gorm:"size:32;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
