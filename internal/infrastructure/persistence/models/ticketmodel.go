package models

type TicketModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:100;not null"`
	Body      string `gorm:"type:text;not null"`
	Category  string `gorm:"size:50;not null;index"`
	State     string `gorm:"size:20;not null;index"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key associations at the gorm level.
	// Relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type BlockModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Author    string `gorm:"size:20;not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (BlockModel) TableName() string {
	return "blocks"
}
