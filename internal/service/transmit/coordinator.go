package transmit

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/metrics"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/tracing"
)

type Coordinator struct {
	transport       domain.ConsoleTransport
	recorder        domain.TransmissionRecorder
	snapshotMetrics *metrics.SnapshotMetrics
	destinations    *keyGuard
	plans           *keyGuard
	resolveAddr     func(network, address string) (*net.UDPAddr, error)
	now             func() time.Time
}

func NewCoordinator(
	transport domain.ConsoleTransport,
	recorder domain.TransmissionRecorder,
	snapshotMetrics *metrics.SnapshotMetrics,
) *Coordinator {
	return &Coordinator{
		transport:       transport,
		recorder:        recorder,
		snapshotMetrics: snapshotMetrics,
		destinations:    newKeyGuard(),
		plans:           newKeyGuard(),
		resolveAddr:     net.ResolveUDPAddr,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// SendPlan sends every entry of the operation's plan in position order and
// returns one result per entry. The operation must be Confirming.
//
// Per-entry failures never abort the run. An error is returned only when
// nothing could be attempted: not confirmed, destination or plan busy, or the
// socket could not be opened.
func (c *Coordinator) SendPlan(ctx context.Context, op *Operation) (*Report, error) {
	destKey, err := c.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	return c.run(ctx, op, destKey)
}

// StartPlan performs the same checks as SendPlan synchronously, then sends in
// the background. The outcome is available through op.View once Completed.
func (c *Coordinator) StartPlan(ctx context.Context, op *Operation) error {
	destKey, err := c.begin(ctx, op)
	if err != nil {
		return err
	}

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if _, err := c.run(bgCtx, op, destKey); err != nil {
			slog.ErrorContext(bgCtx, "background send failed",
				slog.String("operation_id", op.ID()),
				slog.String("error", err.Error()),
			)
		}
	}()

	return nil
}

// begin checks the operation can send and takes the destination and plan
// guards. It returns the destination key to release once the run ends.
func (c *Coordinator) begin(ctx context.Context, op *Operation) (string, error) {
	dest := op.Destination()
	planID := op.Plan().ID()

	if err := op.sendable(); err != nil {
		c.rejectNotSendable(ctx, op, err)
		return "", err
	}

	destKey := c.guardKey(dest)
	if !c.destinations.acquire(destKey, op.ID()) {
		holder, _ := c.destinations.holder(destKey)
		slog.WarnContext(ctx, "send rejected, destination busy",
			slog.String("operation_id", op.ID()),
			slog.String("active_operation_id", holder),
			slog.String("destination", dest.String()),
			slog.String("resolved_destination", destKey),
		)
		c.recordRejected(ctx, "in_progress")
		return "", domain.ErrOperationInProgress
	}

	if !c.plans.acquire(planID, op.ID()) {
		c.destinations.release(destKey, op.ID())
		holder, _ := c.plans.holder(planID)
		slog.WarnContext(ctx, "send rejected, plan already being sent",
			slog.String("operation_id", op.ID()),
			slog.String("active_operation_id", holder),
			slog.String("plan_id", planID),
		)
		c.recordRejected(ctx, "plan_in_progress")
		return "", domain.ErrPlanInProgress
	}

	if err := op.beginSending(c.now()); err != nil {
		c.releaseGuards(op, destKey)
		c.rejectNotSendable(ctx, op, err)
		return "", err
	}

	return destKey, nil
}

// guardKey identifies the console by its resolved address so that a hostname
// and its IP share one guard. Unresolvable hosts fall back to the literal key
// and Open reports the failure.
func (c *Coordinator) guardKey(dest domain.Destination) string {
	addr, err := c.resolveAddr("udp", dest.Key())
	if err != nil || addr == nil {
		return dest.Key()
	}
	return addr.String()
}

func (c *Coordinator) releaseGuards(op *Operation, destKey string) {
	c.plans.release(op.Plan().ID(), op.ID())
	c.destinations.release(destKey, op.ID())
}

func (c *Coordinator) rejectNotSendable(ctx context.Context, op *Operation, err error) {
	slog.WarnContext(ctx, "send rejected",
		slog.String("operation_id", op.ID()),
		slog.String("state", op.State().String()),
		slog.String("error", err.Error()),
	)
	c.recordRejected(ctx, "not_confirmed")
}

func (c *Coordinator) run(ctx context.Context, op *Operation, destKey string) (*Report, error) {
	plan := op.Plan()
	dest := op.Destination()
	defer c.releaseGuards(op, destKey)

	ctx, span := tracing.StartSendPlanSpan(ctx, op.ID(), plan.ID(), dest.String(), plan.Len())
	defer span.End()

	startedAt := c.now()

	slog.InfoContext(ctx, "sending snapshot plan",
		slog.String("operation_id", op.ID()),
		slog.String("plan_id", plan.ID()),
		slog.String("destination", dest.String()),
		slog.Int("entry_count", plan.Len()),
		slog.Int("first_index", plan.FirstIndex()),
	)

	session, err := c.transport.Open(ctx, dest)
	if err != nil {
		err = fmt.Errorf("failed to open console session: %w", err)
		op.complete(nil, err, c.now())
		tracing.RecordSendPlanResult(span, 0, 0, err)
		c.recordRejected(ctx, "setup_failed")
		slog.ErrorContext(ctx, "send aborted before any entry",
			slog.String("operation_id", op.ID()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close console session",
				slog.String("operation_id", op.ID()),
				slog.String("error", err.Error()),
			)
		}
	}()

	entries := plan.Entries()
	results := make([]domain.TransmissionResult, 0, len(entries))

	for _, entry := range entries {
		if ctx.Err() != nil {
			results = append(results, domain.NewFailedResult(entry, reasonCancelled))
			c.recordEntry(ctx, domain.OutcomeFailed)
			continue
		}

		result := c.sendEntry(ctx, session, entry)
		results = append(results, result)
		c.recordEntry(ctx, result.Outcome)
	}

	completedAt := c.now()
	op.complete(results, nil, completedAt)

	sent, failed := countOutcomes(results)
	tracing.RecordSendPlanResult(span, sent, failed, nil)
	if c.snapshotMetrics != nil {
		c.snapshotMetrics.RecordSendDuration(ctx, completedAt.Sub(startedAt))
	}

	slog.InfoContext(ctx, "snapshot plan sent",
		slog.String("operation_id", op.ID()),
		slog.String("plan_id", plan.ID()),
		slog.Int("sent_count", sent),
		slog.Int("failed_count", failed),
	)

	c.recordSummary(ctx, domain.TransmissionSummaryRecord{
		OperationID: op.ID(),
		PlanID:      plan.ID(),
		Destination: dest.String(),
		EntryCount:  len(entries),
		SentCount:   sent,
		FailedCount: failed,
		FirstIndex:  plan.FirstIndex(),
		StartedAt:   startedAt,
		Duration:    completedAt.Sub(startedAt),
	})

	return &Report{
		OperationID: op.ID(),
		PlanID:      plan.ID(),
		Destination: dest,
		SentCount:   sent,
		FailedCount: failed,
		Results:     results,
	}, nil
}

func (c *Coordinator) sendEntry(ctx context.Context, session domain.ConsoleSession, entry domain.SnapshotEntry) domain.TransmissionResult {
	entryCtx, span := tracing.StartSendEntrySpan(ctx, entry.Position, entry.Index)
	defer span.End()

	err := session.SendEntry(entryCtx, entry)
	tracing.RecordEntryResult(span, err)
	if err != nil {
		slog.WarnContext(ctx, "snapshot entry failed",
			slog.Int("position", entry.Position),
			slog.Int("index", entry.Index),
			slog.String("name", entry.Name),
			slog.String("error", err.Error()),
		)
		return domain.NewFailedResult(entry, err.Error())
	}

	slog.DebugContext(ctx, "snapshot entry sent",
		slog.Int("position", entry.Position),
		slog.Int("index", entry.Index),
		slog.String("name", entry.Name),
	)
	return domain.NewSentResult(entry)
}

func (c *Coordinator) recordEntry(ctx context.Context, outcome domain.Outcome) {
	if c.snapshotMetrics != nil {
		c.snapshotMetrics.RecordEntryTransmitted(ctx, outcome.String())
	}
}

func (c *Coordinator) recordRejected(ctx context.Context, reason string) {
	if c.snapshotMetrics != nil {
		c.snapshotMetrics.RecordSendRejected(ctx, reason)
	}
}

func (c *Coordinator) recordSummary(ctx context.Context, record domain.TransmissionSummaryRecord) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordTransmission(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record transmission summary",
			slog.String("operation_id", record.OperationID),
			slog.String("error", err.Error()),
		)
	}
}
