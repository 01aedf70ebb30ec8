package model

type ChecklistItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`
	IsDone      bool   `gorm:"not null;default:false" json:"is_done"`
	ChecklistID uint   `gorm:"not null;index" json:"checklist_id"`

	Checklist Checklist `gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE" json:"-"`
}
