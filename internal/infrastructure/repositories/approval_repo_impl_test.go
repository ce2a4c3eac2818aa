package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"reward-ops.backend/internal/domain/entities"
)

func TestApprovalRepo_AppendAndListInOrder(t *testing.T) {
	db := newTestDB(t)
	createApprovalRecordTable(t, db)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	accountID := uuid.New()
	salesID := uuid.New()
	managerID := uuid.New()

	first := &entities.ApprovalRecord{
		AccountID:  accountID,
		ActorID:    salesID,
		Action:     entities.ApprovalActionApproved,
		FromStatus: entities.StatusPendingSalesman,
		ToStatus:   entities.StatusPendingZoneManager,
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.ApprovalRecord{
		AccountID:  accountID,
		ActorID:    managerID,
		Action:     entities.ApprovalActionApproved,
		FromStatus: entities.StatusPendingZoneManager,
		ToStatus:   entities.StatusApproved,
	}
	require.NoError(t, repo.Create(ctx, second))

	// Unrelated account, should not appear.
	require.NoError(t, repo.Create(ctx, &entities.ApprovalRecord{
		AccountID:  uuid.New(),
		ActorID:    salesID,
		Action:     entities.ApprovalActionRejected,
		FromStatus: entities.StatusPendingSalesman,
		ToStatus:   entities.StatusRejected,
		Reason:     null.StringFrom("incomplete documents"),
	}))

	records, err := repo.ListByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, entities.StatusPendingZoneManager, records[0].ToStatus)
	assert.Equal(t, entities.StatusApproved, records[1].ToStatus)
	assert.False(t, records[0].Reason.Valid)
}

func TestApprovalRepo_RejectionCarriesReason(t *testing.T) {
	db := newTestDB(t)
	createApprovalRecordTable(t, db)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	accountID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.ApprovalRecord{
		AccountID:  accountID,
		ActorID:    uuid.New(),
		Action:     entities.ApprovalActionRejected,
		FromStatus: entities.StatusPendingSalesman,
		ToStatus:   entities.StatusRejected,
		Reason:     null.StringFrom("tax id does not match documents"),
	}))

	records, err := repo.ListByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "tax id does not match documents", records[0].Reason.String)
}
