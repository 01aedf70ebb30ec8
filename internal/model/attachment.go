package model

type Attachment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"not null" json:"content"`
	CardID  uint   `gorm:"not null;index" json:"card_id"`

	Card Card `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"-"`
}
