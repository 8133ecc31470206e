package integration

import (
	"context"
	"testing"
	"time"

	"github.com/veldrin/prisma-cli/internal/adapters/storage"
	"github.com/veldrin/prisma-cli/internal/adapters/tui"
	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
	"github.com/veldrin/prisma-cli/internal/services"
)

// harness wires a controller, a tick gate, and a history service over
// in-memory storage, the same way the command layer does.
type harness struct {
	controller *services.Controller
	gate       *tui.TickGate
	history    *services.HistoryService
	status     *services.StatusService
	store      ports.Storage
}

func setupHarness(t *testing.T, minutes int, mode domain.Mode) *harness {
	t.Helper()

	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	history := services.NewHistoryService(store, nil)
	gate := tui.NewTickGate()

	controller := services.NewController(services.ControllerConfig{
		DefaultMinutes: minutes,
		Mode:           mode,
		Driver:         gate,
		OnSummary: func(final domain.Session, startedAt time.Time) {
			if err := history.Record(context.Background(), final, startedAt); err != nil {
				t.Errorf("failed to record history: %v", err)
			}
		},
	})

	return &harness{
		controller: controller,
		gate:       gate,
		history:    history,
		status:     services.NewStatusService(controller, history),
		store:      store,
	}
}

func (h *harness) tickN(n int) {
	for i := 0; i < n; i++ {
		if h.gate.Active() {
			h.controller.Tick()
		}
	}
}

// TestFullSessionLifecycle drives a classic session from setup through
// the break loop and verifies history lands in storage.
func TestFullSessionLifecycle(t *testing.T) {
	h := setupHarness(t, 5, domain.ModeClassic)
	ctx := context.Background()

	// 1. Start and count down to completion.
	h.controller.Dispatch(domain.EventStart)
	if got := h.controller.Snapshot().Phase; got != domain.PhaseRunning {
		t.Fatalf("expected running, got %v", got)
	}
	h.tickN(300)

	s := h.controller.Snapshot()
	if s.Phase != domain.PhaseSummary {
		t.Fatalf("expected summary after countdown, got %v", s.Phase)
	}
	if s.CycleCount != 1 {
		t.Errorf("expected cycle count 1, got %d", s.CycleCount)
	}

	// 2. The completed session is already in history.
	today, err := h.history.Today(ctx)
	if err != nil {
		t.Fatalf("failed to get daily stats: %v", err)
	}
	if today.Sessions != 1 {
		t.Errorf("expected 1 recorded session, got %d", today.Sessions)
	}

	// 3. Take the break and continue into a second session. A 5-minute
	// session earns a 1-minute break on the first cycle.
	h.controller.Dispatch(domain.EventBreak)
	s = h.controller.Snapshot()
	if s.Phase != domain.PhaseBreak {
		t.Fatalf("expected break, got %v", s.Phase)
	}
	if s.BreakRemainingSeconds != 60 {
		t.Fatalf("expected a 60s break, got %d", s.BreakRemainingSeconds)
	}
	h.tickN(60)

	if got := h.controller.Snapshot().Phase; got != domain.PhaseBreakEnd {
		t.Fatalf("expected break end, got %v", got)
	}
	h.controller.Dispatch(domain.EventContinue)

	s = h.controller.Snapshot()
	if s.Phase != domain.PhaseRunning {
		t.Fatalf("expected running after continue, got %v", s.Phase)
	}
	if s.CycleCount != 1 {
		t.Errorf("continue below long-break threshold must keep the cycle count, got %d", s.CycleCount)
	}

	// 4. Finish the second session and check the totals.
	h.tickN(300)
	h.controller.Dispatch(domain.EventFinish)

	if got := h.controller.Snapshot().Phase; got != domain.PhaseSetup {
		t.Errorf("expected setup after finish, got %v", got)
	}

	records, err := h.history.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.FocusSeconds != 300 {
			t.Errorf("expected 300s of focus, got %d", r.FocusSeconds)
		}
	}
}

// TestFlowOvertimeRecorded checks that overtime accumulated in flow
// reaches the stored record.
func TestFlowOvertimeRecorded(t *testing.T) {
	h := setupHarness(t, 1, domain.ModePrisma)
	ctx := context.Background()

	h.controller.Dispatch(domain.EventStart)
	h.tickN(60)

	if got := h.controller.Snapshot().Phase; got != domain.PhaseFlow {
		t.Fatalf("expected flow at target, got %v", got)
	}

	h.tickN(90)
	h.controller.Dispatch(domain.EventStop)

	records, err := h.history.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].OvertimeSeconds != 90 {
		t.Errorf("expected 90s overtime, got %d", records[0].OvertimeSeconds)
	}
	if records[0].FocusSeconds != 150 {
		t.Errorf("expected 150s total focus, got %d", records[0].FocusSeconds)
	}
}

// TestEarlyStopBelowThresholdNotCounted ensures a short stop still logs
// history but earns no cycle.
func TestEarlyStopBelowThresholdNotCounted(t *testing.T) {
	h := setupHarness(t, 1, domain.ModePrisma)
	ctx := context.Background()

	h.controller.Dispatch(domain.EventStart)
	h.tickN(30) // 50% of target
	h.controller.Dispatch(domain.EventStop)

	s := h.controller.Snapshot()
	if s.Phase != domain.PhaseSummary {
		t.Fatalf("expected summary, got %v", s.Phase)
	}
	if s.CycleCount != 0 {
		t.Errorf("stop below the qualification threshold must not earn a cycle, got %d", s.CycleCount)
	}

	records, err := h.history.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected the short session to be logged, got %d records", len(records))
	}
	if records[0].FocusSeconds != 30 {
		t.Errorf("expected 30s of focus, got %d", records[0].FocusSeconds)
	}
}

// TestLongBreakCycleReset runs four qualifying sessions and checks the
// cycle counter resets on the long-break continuation.
func TestLongBreakCycleReset(t *testing.T) {
	h := setupHarness(t, 5, domain.ModeClassic)

	for i := 0; i < 4; i++ {
		if i == 0 {
			h.controller.Dispatch(domain.EventStart)
		}
		h.tickN(300)

		s := h.controller.Snapshot()
		if s.Phase != domain.PhaseSummary {
			t.Fatalf("round %d: expected summary, got %v", i+1, s.Phase)
		}
		if s.CycleCount != i+1 {
			t.Fatalf("round %d: expected cycle count %d, got %d", i+1, i+1, s.CycleCount)
		}

		h.controller.Dispatch(domain.EventBreak)
		h.tickN(h.controller.Snapshot().BreakRemainingSeconds)
		h.controller.Dispatch(domain.EventContinue)
	}

	// The fourth break was the long one, so the continuation reset the
	// counter before starting the fifth session.
	s := h.controller.Snapshot()
	if s.Phase != domain.PhaseRunning {
		t.Fatalf("expected running after long-break continue, got %v", s.Phase)
	}
	if s.CycleCount != 0 {
		t.Errorf("long-break continuation must reset the cycle count, got %d", s.CycleCount)
	}
}

// TestStatusSnapshot exercises the read model the status command and
// the MCP server share.
func TestStatusSnapshot(t *testing.T) {
	h := setupHarness(t, 25, domain.ModePrisma)
	ctx := context.Background()

	status, err := h.status.Status(ctx)
	if err != nil {
		t.Fatalf("failed to get status: %v", err)
	}
	if status.Session.Phase != domain.PhaseSetup {
		t.Errorf("expected setup phase, got %v", status.Session.Phase)
	}
	if status.Today.Sessions != 0 {
		t.Errorf("expected empty day, got %d sessions", status.Today.Sessions)
	}

	h.controller.Dispatch(domain.EventStart)
	h.tickN(5)

	status, err = h.status.Status(ctx)
	if err != nil {
		t.Fatalf("failed to get status: %v", err)
	}
	if status.Session.Phase != domain.PhaseRunning {
		t.Errorf("expected running phase, got %v", status.Session.Phase)
	}
	if status.Session.RemainingSeconds != 25*60-5 {
		t.Errorf("expected remaining %d, got %d", 25*60-5, status.Session.RemainingSeconds)
	}
}
