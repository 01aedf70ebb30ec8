package service

import "github.com/bananahell/kanban-challenge/internal/model"

// Role is a board permission level. Higher roles satisfy every lower-role
// check.
type Role int

const (
	RoleNone Role = iota
	RoleVisitor
	RoleMember
	RoleAdmin
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleVisitor:
		return model.RoleVisitor
	case RoleMember:
		return model.RoleMember
	case RoleAdmin:
		return model.RoleAdmin
	case RoleOwner:
		return "owner"
	default:
		return "none"
	}
}

func roleFromString(s string) Role {
	switch s {
	case model.RoleAdmin:
		return RoleAdmin
	case model.RoleMember:
		return RoleMember
	case model.RoleVisitor:
		return RoleVisitor
	default:
		return RoleNone
	}
}
