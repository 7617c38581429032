package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/metrics"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/tracing"
)

type Service struct {
	builder         *Builder
	planRepo        domain.SnapshotPlanRepository
	snapshotMetrics *metrics.SnapshotMetrics
}

func NewService(
	builder *Builder,
	planRepo domain.SnapshotPlanRepository,
	snapshotMetrics *metrics.SnapshotMetrics,
) *Service {
	return &Service{
		builder:         builder,
		planRepo:        planRepo,
		snapshotMetrics: snapshotMetrics,
	}
}

// BuildPlan builds a plan from the selection and stores it as the current
// plan for sourceKey. The plan it supersedes, if any, is discarded.
func (s *Service) BuildPlan(
	ctx context.Context,
	sourceKey string,
	selection []domain.PlanTime,
	existingCount int,
	opts Options,
) (*domain.SnapshotPlan, error) {
	ctx, span := tracing.StartBuildPlanSpan(ctx, sourceKey, len(selection), existingCount)
	defer span.End()

	start := time.Now()
	plan, err := s.builder.Build(sourceKey, selection, existingCount, opts)
	if s.snapshotMetrics != nil {
		s.snapshotMetrics.RecordPlanBuilt(ctx, buildOutcome(err), time.Since(start))
	}
	if err != nil {
		tracing.RecordBuildPlanResult(span, 0, err)
		slog.WarnContext(ctx, "snapshot plan build rejected",
			slog.String("source_key", sourceKey),
			slog.Int("selected_count", len(selection)),
			slog.Int("existing_count", existingCount),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	previousID, err := s.planRepo.GetCurrentPlanID(ctx, sourceKey)
	if err != nil && !errors.Is(err, domain.ErrPlanNotFound) {
		slog.WarnContext(ctx, "failed to read current snapshot plan",
			slog.String("source_key", sourceKey),
			slog.String("error", err.Error()),
		)
	}

	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		tracing.RecordBuildPlanResult(span, plan.Len(), err)
		slog.ErrorContext(ctx, "failed to store snapshot plan",
			slog.String("plan_id", plan.ID()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if previousID != "" && previousID != plan.ID() {
		s.discardPlan(ctx, previousID, plan.ID())
	}

	tracing.RecordBuildPlanResult(span, plan.Len(), nil)
	slog.InfoContext(ctx, "snapshot plan built",
		slog.String("plan_id", plan.ID()),
		slog.String("source_key", sourceKey),
		slog.Int("entry_count", plan.Len()),
		slog.Int("first_index", plan.FirstIndex()),
	)

	return plan, nil
}

func (s *Service) GetPlan(ctx context.Context, planID string) (*domain.SnapshotPlan, error) {
	return s.planRepo.GetPlan(ctx, planID)
}

// GetCurrentPlan loads a plan and fails with domain.ErrPlanSuperseded when a
// newer build exists for the same source.
func (s *Service) GetCurrentPlan(ctx context.Context, planID string) (*domain.SnapshotPlan, error) {
	plan, err := s.planRepo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := s.EnsureCurrent(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// EnsureCurrent fails with domain.ErrPlanSuperseded unless plan is still the
// latest build for its source. Operations check it again right before sending.
func (s *Service) EnsureCurrent(ctx context.Context, plan *domain.SnapshotPlan) error {
	currentID, err := s.planRepo.GetCurrentPlanID(ctx, plan.SourceKey())
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return domain.ErrPlanSuperseded
		}
		return err
	}
	if currentID != plan.ID() {
		slog.InfoContext(ctx, "snapshot plan superseded",
			slog.String("plan_id", plan.ID()),
			slog.String("current_plan_id", currentID),
		)
		return domain.ErrPlanSuperseded
	}
	return nil
}

func (s *Service) discardPlan(ctx context.Context, planID, supersededBy string) {
	if err := s.planRepo.DeletePlan(ctx, planID); err != nil {
		slog.WarnContext(ctx, "failed to discard superseded snapshot plan",
			slog.String("plan_id", planID),
			slog.String("superseded_by", supersededBy),
			slog.String("error", err.Error()),
		)
		return
	}

	slog.DebugContext(ctx, "superseded snapshot plan discarded",
		slog.String("plan_id", planID),
		slog.String("superseded_by", supersededBy),
	)
}

func buildOutcome(err error) string {
	switch {
	case err == nil:
		return "built"
	case errors.Is(err, domain.ErrInvalidOffset):
		return "invalid_offset"
	case errors.Is(err, domain.ErrSelectionEmpty):
		return "selection_empty"
	default:
		return "error"
	}
}
