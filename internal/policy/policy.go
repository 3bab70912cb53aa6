// Package policy holds the authorization decisions for request operations.
// Every rule is a pure function over the actor and the resource owner so the
// rule set stays enumerable and testable in one place instead of being
// scattered across handlers.
package policy

import (
	"github.com/google/uuid"

	"go-stockflow/internal/model"
)

// Actor is the authenticated identity performing an operation
type Actor struct {
	ID   uuid.UUID
	Name string
	Role model.Role
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// CanViewRequest: admin sees all requests, staff only their own
func CanViewRequest(actor Actor, ownerID uuid.UUID) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}

// CanModifyRequest governs edit, cancel, and delete alike:
// admin may touch any request, staff only their own
func CanModifyRequest(actor Actor, ownerID uuid.UUID) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}

// CanReviewRequest governs approve and reject: admin only
func CanReviewRequest(actor Actor) bool {
	return actor.IsAdmin()
}

// CanManageProducts: products are created, edited, and deactivated by admins only
func CanManageProducts(actor Actor) bool {
	return actor.IsAdmin()
}
