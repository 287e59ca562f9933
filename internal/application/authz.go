package application

import (
	"errors"

	"github.com/sunspire/solar-crm/internal/domain/user"
)

var (
	ErrForbidden       = errors.New("insufficient privileges for this operation")
	ErrUnauthenticated = errors.New("no authenticated user")
)

// Actor is the resolved identity performing an operation.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == string(user.RoleAdmin)
}

func (a Actor) IsTechnician() bool {
	return a.Role == string(user.RoleTechnician)
}

// CanTouch is the owner-or-admin predicate guarding quotations and
// installations: admins may act on any record, everyone else only on
// records they own.
func (a Actor) CanTouch(ownerID uint) bool {
	if a.IsAdmin() {
		return true
	}
	return a.ID != 0 && a.ID == ownerID
}

// CanHandle extends CanTouch to technicians, who work any customer's
// complaints and support tickets.
func (a Actor) CanHandle(ownerID uint) bool {
	return a.IsTechnician() || a.CanTouch(ownerID)
}
