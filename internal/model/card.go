package model

import "time"

type Card struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description,omitempty"`
	BeginDate    *time.Time `json:"begin_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	StatusListID uint       `gorm:"not null;index" json:"status_list_id"`
	TagID        *uint      `json:"tag_id,omitempty"`

	StatusList StatusList `gorm:"foreignKey:StatusListID;constraint:OnDelete:CASCADE" json:"-"`
	Tag        *Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:SET NULL" json:"-"`
	Users      []User     `gorm:"many2many:card_users;constraint:OnDelete:CASCADE" json:"users,omitempty"`
}
