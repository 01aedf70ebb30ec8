package model

// Tag is a global vocabulary shared by all boards.
type Tag struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	BackgroundColor string `json:"background_color,omitempty"`
	FontColor       string `json:"font_color,omitempty"`
}
