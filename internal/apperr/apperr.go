package apperr

import "errors"

// Kind classifies an application error so handlers can map it to an HTTP
// status without inspecting message strings.
type Kind int

const (
	KindNotFound Kind = iota
	KindForbidden
	KindValidation
)

// Error is a client-facing failure with a fixed, enumerable reason.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// All reason codes surfaced by the API.
var (
	ErrResourceNotFound = NotFound("resource not found")

	ErrCredentialsTaken  = Forbidden("credentials taken")
	ErrEmailNotFound     = Forbidden("email not found in database")
	ErrIncorrectPassword = Forbidden("incorrect password")

	ErrNotBoardAdmin   = Forbidden("user does not have admin permission for this")
	ErrNotBoardMember  = Forbidden("user does not have member permission for this")
	ErrNotBoardVisitor = Forbidden("user does not have visitor permission for this")

	ErrNotCommentOwner  = Forbidden("user not allowed to edit resource")
	ErrCantRemoveOwner  = Forbidden("owner cannot remove self from board users")
	ErrCantPassToOwner  = Forbidden("ownership cannot be passed to owner")
	ErrPositionTaken    = Forbidden("status list's position already taken")
	ErrAlreadyBoardUser = Forbidden("user already inside board")
)

func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsForbidden(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindForbidden
}
