package usecases

import (
	"context"

	"fieldops/internal/application/workshop/dto"
)

type GetQueueExecutor interface {
	Execute(ctx context.Context, query GetQueueQuery) ([]dto.QueueItemDTO, error)
}

type GetCapacityExecutor interface {
	Execute(ctx context.Context, query GetCapacityQuery) (*dto.CapacitySnapshotDTO, error)
}

type IntakeEquipmentExecutor interface {
	Execute(ctx context.Context, cmd IntakeEquipmentCommand) (*dto.IntakeDTO, error)
}

type ClaimJobExecutor interface {
	Execute(ctx context.Context, cmd ClaimJobCommand) (*dto.ClaimedJobDTO, error)
}

type TransitionStatusExecutor interface {
	Execute(ctx context.Context, cmd TransitionStatusCommand) (*dto.EquipmentStatusDTO, error)
}

type GetStatusHistoryExecutor interface {
	Execute(ctx context.Context, query GetStatusHistoryQuery) ([]dto.StatusHistoryEntryDTO, error)
}

type InvoiceReadinessExecutor interface {
	Execute(ctx context.Context, query InvoiceReadinessQuery) (*dto.InvoiceReadinessDTO, error)
}

type CalculateJobTotalExecutor interface {
	Execute(ctx context.Context, cmd CalculateJobTotalCommand) (*dto.JobTotalDTO, error)
}
