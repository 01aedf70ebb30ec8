package model

type StatusList struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Position int    `gorm:"not null;uniqueIndex:idx_board_position" json:"position"`
	BoardID  uint   `gorm:"not null;uniqueIndex:idx_board_position" json:"board_id"`

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"-"`
}
