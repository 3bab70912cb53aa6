package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-stockflow/internal/model"
)

func TestRequestPolicies(t *testing.T) {
	ownerID := uuid.New()
	admin := Actor{ID: uuid.New(), Role: model.RoleAdmin}
	owner := Actor{ID: ownerID, Role: model.RoleStaff}
	otherStaff := Actor{ID: uuid.New(), Role: model.RoleStaff}

	tests := []struct {
		name  string
		check func(Actor, uuid.UUID) bool
	}{
		{"view", CanViewRequest},
		{"modify", CanModifyRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(admin, ownerID), "admin may %s any request", tt.name)
			assert.True(t, tt.check(owner, ownerID), "owner may %s their own request", tt.name)
			assert.False(t, tt.check(otherStaff, ownerID), "staff may not %s a foreign request", tt.name)
		})
	}
}

func TestCanReviewRequest(t *testing.T) {
	assert.True(t, CanReviewRequest(Actor{ID: uuid.New(), Role: model.RoleAdmin}))
	assert.False(t, CanReviewRequest(Actor{ID: uuid.New(), Role: model.RoleStaff}))
}

func TestCanManageProducts(t *testing.T) {
	assert.True(t, CanManageProducts(Actor{Role: model.RoleAdmin}))
	assert.False(t, CanManageProducts(Actor{Role: model.RoleStaff}))
}
