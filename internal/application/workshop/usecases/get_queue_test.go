package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
)

func TestGetQueueUseCase_Execute_OrdersByPriority(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(72 * time.Hour)

	entries := []workshop.QueueEntry{
		{JobID: 1, JobNumber: "J-20250310-0001", Priority: jobvo.PriorityLow, RepairStatus: vo.StatusReceived, IntakeAt: now, EstimatedAt: future},
		{JobID: 2, JobNumber: "J-20250310-0002", Priority: jobvo.PriorityUrgent, RepairStatus: vo.StatusReceived, IntakeAt: now, EstimatedAt: future},
		{JobID: 3, JobNumber: "J-20250310-0003", Priority: jobvo.PriorityMedium, RepairStatus: vo.StatusInRepair, IntakeAt: now, EstimatedAt: future},
	}

	queueRepo := &mockQueueRepository{
		ListQueueFunc: func(ctx context.Context, companyID uint, filter workshop.QueueFilter) ([]workshop.QueueEntry, error) {
			return entries, nil
		},
	}

	uc := NewGetQueueUseCase(queueRepo, noopLogger{})

	items, err := uc.Execute(context.Background(), GetQueueQuery{CompanyID: 7})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, uint(2), items[0].JobID)
	assert.Equal(t, uint(3), items[1].JobID)
	assert.Equal(t, uint(1), items[2].JobID)
	assert.False(t, items[0].IsOverdue)
	assert.Equal(t, 0, items[0].DaysWaiting)
}

func TestGetQueueUseCase_Execute_OverdueBonus(t *testing.T) {
	now := time.Now().UTC()

	entries := []workshop.QueueEntry{
		{JobID: 1, Priority: jobvo.PriorityMedium, RepairStatus: vo.StatusReceived, IntakeAt: now, EstimatedAt: now.Add(24 * time.Hour)},
		{JobID: 2, Priority: jobvo.PriorityLow, RepairStatus: vo.StatusReceived, IntakeAt: now.Add(-48 * time.Hour), EstimatedAt: now.Add(-2 * time.Hour)},
	}

	queueRepo := &mockQueueRepository{
		ListQueueFunc: func(ctx context.Context, companyID uint, filter workshop.QueueFilter) ([]workshop.QueueEntry, error) {
			return entries, nil
		},
	}

	uc := NewGetQueueUseCase(queueRepo, noopLogger{})

	items, err := uc.Execute(context.Background(), GetQueueQuery{CompanyID: 7})

	require.NoError(t, err)
	// low: 25 + 2 + 50 = 77 beats medium: 50
	assert.Equal(t, uint(2), items[0].JobID)
	assert.True(t, items[0].IsOverdue)
	assert.Equal(t, 2, items[0].DaysWaiting)
}

func TestGetQueueUseCase_Execute_PriorityFilter(t *testing.T) {
	var captured workshop.QueueFilter
	queueRepo := &mockQueueRepository{
		ListQueueFunc: func(ctx context.Context, companyID uint, filter workshop.QueueFilter) ([]workshop.QueueEntry, error) {
			captured = filter
			return nil, nil
		},
	}

	uc := NewGetQueueUseCase(queueRepo, noopLogger{})

	customerID := uint(12)
	_, err := uc.Execute(context.Background(), GetQueueQuery{
		CompanyID:     7,
		EquipmentType: "espresso_machine",
		CustomerID:    &customerID,
		Priority:      "urgent",
	})

	require.NoError(t, err)
	assert.Equal(t, "espresso_machine", captured.EquipmentType)
	require.NotNil(t, captured.CustomerID)
	assert.Equal(t, uint(12), *captured.CustomerID)
	require.NotNil(t, captured.Priority)
	assert.Equal(t, jobvo.PriorityUrgent, *captured.Priority)
}

func TestGetQueueUseCase_Execute_InvalidPriority(t *testing.T) {
	uc := NewGetQueueUseCase(&mockQueueRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), GetQueueQuery{CompanyID: 7, Priority: "critical"})

	assert.True(t, errors.IsValidationError(err))
}
