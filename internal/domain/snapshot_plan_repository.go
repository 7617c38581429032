package domain

import "context"

//go:generate mockgen -source=snapshot_plan_repository.go -destination=snapshot_plan_repository_mock.go -package=domain

type SnapshotPlanRepository interface {
	// SavePlan stores the plan and marks it as the current plan for its source.
	SavePlan(ctx context.Context, plan *SnapshotPlan) error
	GetPlan(ctx context.Context, planID string) (*SnapshotPlan, error)
	GetCurrentPlanID(ctx context.Context, sourceKey string) (string, error)
	DeletePlan(ctx context.Context, planID string) error
}
