package transmit

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

func testPlan(names ...string) *domain.SnapshotPlan {
	entries := make([]domain.SnapshotEntry, len(names))
	for i, name := range names {
		entries[i] = domain.SnapshotEntry{Position: i + 1, Name: name, Index: 10 + i}
	}
	return domain.NewSnapshotPlan("plan-"+strings.Join(names, "-"), "source-1", 10, entries, time.Now())
}

func confirmedOperation(t *testing.T, plan *domain.SnapshotPlan, dest domain.Destination) *Operation {
	t.Helper()

	op, err := NewOperation(plan, dest)
	if err != nil {
		t.Fatalf("failed to create operation: %v", err)
	}
	if err := op.RequestConfirmation(); err != nil {
		t.Fatalf("failed to confirm operation: %v", err)
	}
	return op
}

func TestSendPlanContinuesAfterEntryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("192.168.1.50", 8000)
	plan := testPlan("A", "B", "C")

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	mockSession := domain.NewMockConsoleSession(ctrl)
	mockRecorder := domain.NewMockTransmissionRecorder(ctrl)

	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(mockSession, nil)
	gomock.InOrder(
		mockSession.EXPECT().SendEntry(gomock.Any(), plan.Entries()[0]).Return(nil),
		mockSession.EXPECT().SendEntry(gomock.Any(), plan.Entries()[1]).Return(errors.New("network is unreachable")),
		mockSession.EXPECT().SendEntry(gomock.Any(), plan.Entries()[2]).Return(nil),
	)
	mockSession.EXPECT().Close().Return(nil)

	var recorded domain.TransmissionSummaryRecord
	mockRecorder.EXPECT().
		RecordTransmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.TransmissionSummaryRecord) error {
			recorded = record
			return nil
		})

	coordinator := NewCoordinator(mockTransport, mockRecorder, nil)
	op := confirmedOperation(t, plan, dest)

	report, err := coordinator.SendPlan(context.Background(), op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Outcome{domain.OutcomeSent, domain.OutcomeFailed, domain.OutcomeSent}
	if len(report.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(report.Results))
	}
	for i, result := range report.Results {
		if result.Outcome != want[i] {
			t.Errorf("result %d: expected %s, got %s", i, want[i], result.Outcome)
		}
		if result.Position != i+1 {
			t.Errorf("result %d: expected position %d, got %d", i, i+1, result.Position)
		}
	}
	if report.Results[1].Reason != "network is unreachable" {
		t.Errorf("expected failure reason to carry the send error, got %q", report.Results[1].Reason)
	}
	if report.Results[0].Reason != "" {
		t.Errorf("expected no reason on a sent entry, got %q", report.Results[0].Reason)
	}
	if report.SentCount != 2 || report.FailedCount != 1 {
		t.Errorf("expected 2 sent and 1 failed, got %d and %d", report.SentCount, report.FailedCount)
	}
	if report.AllSent() {
		t.Error("expected AllSent to be false")
	}
	if op.State() != StateCompleted {
		t.Errorf("expected Completed, got %s", op.State())
	}
	if recorded.FirstIndex != 10 || recorded.EntryCount != 3 || recorded.FailedCount != 1 {
		t.Errorf("unexpected summary record: %+v", recorded)
	}
}

func TestSendPlanRequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	coordinator := NewCoordinator(mockTransport, nil, nil)

	op, err := NewOperation(testPlan("A"), domain.NewDestination("10.0.0.2", 8000))
	if err != nil {
		t.Fatalf("failed to create operation: %v", err)
	}

	_, err = coordinator.SendPlan(context.Background(), op)
	if !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if op.State() != StateIdle {
		t.Errorf("expected operation to stay Idle, got %s", op.State())
	}

	if _, busy := coordinator.destinations.holder(coordinator.guardKey(op.Destination())); busy {
		t.Error("expected destination guard to be free")
	}
}

func TestSendPlanRejectsAbandonedOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator := NewCoordinator(domain.NewMockConsoleTransport(ctrl), nil, nil)
	op := confirmedOperation(t, testPlan("A"), domain.NewDestination("10.0.0.2", 8000))

	if err := op.Abandon(); err != nil {
		t.Fatalf("unexpected abandon error: %v", err)
	}

	_, err := coordinator.SendPlan(context.Background(), op)
	if !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
}

func TestSendPlanRejectsCompletedOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	mockTransport := domain.NewMockConsoleTransport(ctrl)
	mockSession := domain.NewMockConsoleSession(ctrl)

	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(mockSession, nil).Times(1)
	mockSession.EXPECT().SendEntry(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockSession.EXPECT().Close().Return(nil).Times(1)

	coordinator := NewCoordinator(mockTransport, nil, nil)
	op := confirmedOperation(t, testPlan("A"), dest)

	if _, err := coordinator.SendPlan(context.Background(), op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := coordinator.SendPlan(context.Background(), op)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on re-send, got %v", err)
	}
}

func TestSendPlanOpenFailureAttemptsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	openErr := errors.New("socket: permission denied")

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(nil, openErr)

	coordinator := NewCoordinator(mockTransport, nil, nil)
	op := confirmedOperation(t, testPlan("A", "B"), dest)

	report, err := coordinator.SendPlan(context.Background(), op)
	if !errors.Is(err, openErr) {
		t.Fatalf("expected open error, got %v", err)
	}
	if report != nil {
		t.Errorf("expected no report, got %+v", report)
	}

	view := op.View()
	if view.State != StateCompleted {
		t.Errorf("expected Completed, got %s", view.State)
	}
	if view.Error == "" {
		t.Error("expected operation error to be recorded")
	}
	if len(view.Results) != 0 {
		t.Errorf("expected no results, got %d", len(view.Results))
	}
	if _, busy := coordinator.destinations.holder(coordinator.guardKey(dest)); busy {
		t.Error("expected destination guard to be released")
	}
	if _, busy := coordinator.plans.holder(op.Plan().ID()); busy {
		t.Error("expected plan guard to be released")
	}
}

func TestSendPlanCancelledBeforeEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	plan := testPlan("A", "B", "C")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	mockSession := domain.NewMockConsoleSession(ctrl)

	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(mockSession, nil)
	mockSession.EXPECT().
		SendEntry(gomock.Any(), plan.Entries()[0]).
		DoAndReturn(func(context.Context, domain.SnapshotEntry) error {
			cancel()
			return nil
		})
	mockSession.EXPECT().Close().Return(nil)

	coordinator := NewCoordinator(mockTransport, nil, nil)
	op := confirmedOperation(t, plan, dest)

	report, err := coordinator.SendPlan(ctx, op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 3 {
		t.Fatalf("expected a result for every entry, got %d", len(report.Results))
	}
	if !report.Results[0].Outcome.IsSent() {
		t.Errorf("expected first entry sent, got %s", report.Results[0].Outcome)
	}
	for _, result := range report.Results[1:] {
		if result.Outcome != domain.OutcomeFailed || result.Reason != reasonCancelled {
			t.Errorf("expected position %d cancelled, got %+v", result.Position, result)
		}
	}
}

func TestSendPlanRejectsConcurrentSendToSameDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	other := domain.NewDestination("10.0.0.3", 8000)

	opened := make(chan struct{})
	release := make(chan struct{})

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	firstSession := domain.NewMockConsoleSession(ctrl)
	otherSession := domain.NewMockConsoleSession(ctrl)

	mockTransport.EXPECT().
		Open(gomock.Any(), dest).
		DoAndReturn(func(context.Context, domain.Destination) (domain.ConsoleSession, error) {
			close(opened)
			<-release
			return firstSession, nil
		}).
		Times(1)
	firstSession.EXPECT().SendEntry(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	firstSession.EXPECT().Close().Return(nil)

	mockTransport.EXPECT().Open(gomock.Any(), other).Return(otherSession, nil).Times(1)
	otherSession.EXPECT().SendEntry(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	otherSession.EXPECT().Close().Return(nil)

	coordinator := NewCoordinator(mockTransport, nil, nil)
	first := confirmedOperation(t, testPlan("A"), dest)

	done := make(chan error, 1)
	go func() {
		_, err := coordinator.SendPlan(context.Background(), first)
		done <- err
	}()
	<-opened

	// A separately built Destination for the same console.
	second := confirmedOperation(t, testPlan("B"), domain.NewDestination("10.0.0.2", 8000))
	if _, err := coordinator.SendPlan(context.Background(), second); !errors.Is(err, domain.ErrOperationInProgress) {
		t.Fatalf("expected ErrOperationInProgress, got %v", err)
	}
	if second.State() != StateConfirming {
		t.Errorf("expected rejected operation to stay Confirming, got %s", second.State())
	}

	third := confirmedOperation(t, testPlan("C"), other)
	if _, err := coordinator.SendPlan(context.Background(), third); err != nil {
		t.Fatalf("expected a different destination to proceed, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error from first send: %v", err)
	}

	// Once the first send completes the rejected operation may go ahead.
	firstSession2 := domain.NewMockConsoleSession(ctrl)
	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(firstSession2, nil)
	firstSession2.EXPECT().SendEntry(gomock.Any(), gomock.Any()).Return(nil)
	firstSession2.EXPECT().Close().Return(nil)

	if _, err := coordinator.SendPlan(context.Background(), second); err != nil {
		t.Fatalf("expected send after release to succeed, got %v", err)
	}
}

func TestStartPlanSendsInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	plan := testPlan("A", "B")

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	mockSession := domain.NewMockConsoleSession(ctrl)

	closed := make(chan struct{})
	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(mockSession, nil)
	mockSession.EXPECT().SendEntry(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockSession.EXPECT().Close().DoAndReturn(func() error {
		close(closed)
		return nil
	})

	coordinator := NewCoordinator(mockTransport, nil, nil)
	op := confirmedOperation(t, plan, dest)

	ctx, cancel := context.WithCancel(context.Background())
	if err := coordinator.StartPlan(ctx, op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The request context ending must not stop the background send.
	cancel()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("background send did not finish")
	}

	deadline := time.Now().Add(2 * time.Second)
	for op.State() != StateCompleted && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	view := op.View()
	if view.State != StateCompleted {
		t.Fatalf("expected Completed, got %s", view.State)
	}
	if view.SentCount != 2 {
		t.Errorf("expected 2 sent, got %d", view.SentCount)
	}
}

func TestStartPlanRequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator := NewCoordinator(domain.NewMockConsoleTransport(ctrl), nil, nil)
	op, err := NewOperation(testPlan("A"), domain.NewDestination("10.0.0.2", 8000))
	if err != nil {
		t.Fatalf("failed to create operation: %v", err)
	}

	if err := coordinator.StartPlan(context.Background(), op); !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
}

func TestSendPlanEmptyPlanOpensAndCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	mockTransport := domain.NewMockConsoleTransport(ctrl)
	mockSession := domain.NewMockConsoleSession(ctrl)

	mockTransport.EXPECT().Open(gomock.Any(), dest).Return(mockSession, nil)
	mockSession.EXPECT().Close().Return(nil)

	coordinator := NewCoordinator(mockTransport, nil, nil)
	op := confirmedOperation(t, domain.NewSnapshotPlan("plan-empty", "source-1", 4, nil, time.Now()), dest)

	report, err := coordinator.SendPlan(context.Background(), op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Results) != 0 || !report.AllSent() {
		t.Errorf("expected empty successful report, got %+v", report)
	}
}

// blockingOpen makes Open on dest wait for release, closing opened once the
// send holds its guards. The returned channel closes with the session.
func blockingOpen(mockTransport *domain.MockConsoleTransport, session *domain.MockConsoleSession, dest domain.Destination, opened, release chan struct{}) <-chan struct{} {
	closed := make(chan struct{})
	mockTransport.EXPECT().
		Open(gomock.Any(), dest).
		DoAndReturn(func(context.Context, domain.Destination) (domain.ConsoleSession, error) {
			close(opened)
			<-release
			return session, nil
		})
	session.EXPECT().SendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	session.EXPECT().Close().DoAndReturn(func() error {
		close(closed)
		return nil
	})
	return closed
}

func waitClosed(t *testing.T, closed <-chan struct{}) {
	t.Helper()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("send did not finish")
	}
}

func TestSendPlanTreatsAddressAliasesAsOneConsole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	byName := domain.NewDestination("console.local", 8000)
	byIP := domain.NewDestination("10.0.0.5", 8000)

	opened := make(chan struct{})
	release := make(chan struct{})

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	blockingOpen(mockTransport, domain.NewMockConsoleSession(ctrl), byName, opened, release)

	coordinator := NewCoordinator(mockTransport, nil, nil)
	coordinator.resolveAddr = func(network, address string) (*net.UDPAddr, error) {
		switch address {
		case "console.local:8000", "10.0.0.5:8000":
			return &net.UDPAddr{IP: net.IPv4(10, 0, 0, 5), Port: 8000}, nil
		}
		return nil, errors.New("no such host")
	}

	first := confirmedOperation(t, testPlan("A"), byName)
	done := make(chan error, 1)
	go func() {
		_, err := coordinator.SendPlan(context.Background(), first)
		done <- err
	}()
	<-opened

	second := confirmedOperation(t, testPlan("B"), byIP)
	if _, err := coordinator.SendPlan(context.Background(), second); !errors.Is(err, domain.ErrOperationInProgress) {
		t.Fatalf("expected ErrOperationInProgress, got %v", err)
	}
	if second.State() != StateConfirming {
		t.Errorf("expected rejected operation to stay Confirming, got %s", second.State())
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error from first send: %v", err)
	}
}

func TestGuardKeyFallsBackWhenUnresolvable(t *testing.T) {
	coordinator := NewCoordinator(nil, nil, nil)
	coordinator.resolveAddr = func(string, string) (*net.UDPAddr, error) {
		return nil, errors.New("no such host")
	}

	dest := domain.NewDestination("Mixer.Invalid", 8000)
	if got := coordinator.guardKey(dest); got != dest.Key() {
		t.Errorf("guardKey() = %q, want %q", got, dest.Key())
	}
}

func TestSendPlanRejectsSecondSendOfSamePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := testPlan("A")
	dest := domain.NewDestination("10.0.0.1", 8000)
	other := domain.NewDestination("10.0.0.2", 8000)

	opened := make(chan struct{})
	release := make(chan struct{})

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	closed := blockingOpen(mockTransport, domain.NewMockConsoleSession(ctrl), dest, opened, release)

	coordinator := NewCoordinator(mockTransport, nil, nil)

	first := confirmedOperation(t, plan, dest)
	if err := coordinator.StartPlan(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-opened

	second := confirmedOperation(t, plan, other)
	if err := coordinator.StartPlan(context.Background(), second); !errors.Is(err, domain.ErrPlanInProgress) {
		t.Fatalf("expected ErrPlanInProgress, got %v", err)
	}
	if second.State() != StateConfirming {
		t.Errorf("expected rejected operation to stay Confirming, got %s", second.State())
	}
	if _, busy := coordinator.destinations.holder(coordinator.guardKey(other)); busy {
		t.Error("expected the other destination to stay free")
	}

	close(release)
	waitClosed(t, closed)
	if first.State() != StateCompleted {
		t.Fatalf("expected first send to complete, got %s", first.State())
	}
}

func TestSendPlanUnconfirmedReportsStateBeforeBusyDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dest := domain.NewDestination("10.0.0.2", 8000)
	opened := make(chan struct{})
	release := make(chan struct{})

	mockTransport := domain.NewMockConsoleTransport(ctrl)
	closed := blockingOpen(mockTransport, domain.NewMockConsoleSession(ctrl), dest, opened, release)

	coordinator := NewCoordinator(mockTransport, nil, nil)

	busy := confirmedOperation(t, testPlan("A"), dest)
	if err := coordinator.StartPlan(context.Background(), busy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-opened
	defer waitClosed(t, closed)
	defer close(release)

	idle, err := NewOperation(testPlan("B"), dest)
	if err != nil {
		t.Fatalf("failed to create operation: %v", err)
	}
	if _, err := coordinator.SendPlan(context.Background(), idle); !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
}
