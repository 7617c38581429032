package pco

import (
	"context"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=pco

// PlanTimeSource is the read side of Planning Center used to pick what to build.
type PlanTimeSource interface {
	CheckConnection(ctx context.Context, creds Credentials) error
	ListServiceTypes(ctx context.Context, creds Credentials) ([]ServiceType, error)
	ListFuturePlans(ctx context.Context, creds Credentials, serviceTypeID string, count int) ([]Plan, error)
	ListPlanTimes(ctx context.Context, creds Credentials, serviceTypeID, planID string) ([]domain.PlanTime, error)
	ListCues(ctx context.Context, creds Credentials, serviceTypeID, planID string, timeIDs []string) ([]domain.PlanTime, error)
}
