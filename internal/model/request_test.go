package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestTransactionTypeLabel(t *testing.T) {
	assert.Equal(t, "Stock In", TxStockIn.Label())
	assert.Equal(t, "Stock Out", TxStockOut.Label())
}

func TestAppendActivity(t *testing.T) {
	var r Request
	creator := uuid.New()
	editor := uuid.New()

	r.AppendActivity("created", creator, "Created by staff")
	r.AppendActivity("updated", editor, "Updated by admin")

	require.Len(t, r.ActivityLog, 2)
	// Earlier entries stay untouched as the log grows
	assert.Equal(t, "created", r.ActivityLog[0].Action)
	assert.Equal(t, creator, r.ActivityLog[0].PerformedBy)
	assert.Equal(t, "updated", r.ActivityLog[1].Action)
	assert.Equal(t, editor, r.ActivityLog[1].PerformedBy)
	assert.False(t, r.ActivityLog[1].PerformedAt.Before(r.ActivityLog[0].PerformedAt))
}
