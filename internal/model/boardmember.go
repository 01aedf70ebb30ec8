package model

import "time"

// BoardMember ties a user to a board with exactly one role. The board owner
// is not required to have a row here, but board creation inserts an admin
// row for the owner so admin-gated checks pass uniformly.
type BoardMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BoardID   uint      `gorm:"not null;uniqueIndex:idx_board_user" json:"board_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_board_user" json:"user_id"`
	Role      string    `gorm:"not null;check:role IN ('admin', 'member', 'visitor')" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"-"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Role values stored in board_members. Owner is implicit through
// Board.OwnerID and outranks all of them.
const (
	RoleAdmin   = "admin"
	RoleMember  = "member"
	RoleVisitor = "visitor"
)
