package services

import (
	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/entities"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID uint
	Role   entities.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entities.RoleAdmin
}

// resolveUser returns the user a request targets: the caller when userID is
// zero, someone else only for admins.
func (a Actor) resolveUser(userID uint) (uint, error) {
	if userID == 0 {
		return a.UserID, nil
	}
	if userID != a.UserID && !a.IsAdmin() {
		return 0, apperr.Forbidden("not_owner", "only administrators may act on behalf of other users")
	}
	return userID, nil
}
