package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veldrin/prisma-cli/internal/adapters/storage"
	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
)

func setupTestStorage(t *testing.T) (ports.Storage, func()) {
	t.Helper()

	store, err := storage.NewMemory()
	require.NoError(t, err)

	return store, func() { store.Close() }
}

func finishedSession(focusSeconds int) domain.Session {
	return domain.Session{
		Phase:             domain.PhaseSummary,
		Mode:              domain.ModePrisma,
		TargetSeconds:     1500,
		TotalFocusSeconds: focusSeconds,
		CycleCount:        1,
	}
}

func TestHistoryService_Record(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	service := NewHistoryService(store, nil)
	ctx := context.Background()

	err := service.Record(ctx, finishedSession(1500), time.Now().Add(-25*time.Minute))
	require.NoError(t, err)

	records, err := service.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, domain.ModePrisma, records[0].Mode)
	assert.Equal(t, 1500, records[0].FocusSeconds)
	assert.Equal(t, 1, records[0].Cycles)
	assert.NotEmpty(t, records[0].ID)
}

func TestHistoryService_Today(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	service := NewHistoryService(store, nil)
	ctx := context.Background()

	require.NoError(t, service.Record(ctx, finishedSession(1500), time.Now()))
	require.NoError(t, service.Record(ctx, finishedSession(600), time.Now()))

	stats, err := service.Today(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 35*time.Minute, stats.TotalFocusTime)
}

func TestHistoryService_RecentClampsDays(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	service := NewHistoryService(store, nil)
	ctx := context.Background()

	require.NoError(t, service.Record(ctx, finishedSession(60), time.Now()))

	records, err := service.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStatusService_Status(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	history := NewHistoryService(store, nil)
	controller := NewController(ControllerConfig{DefaultMinutes: 25, Mode: domain.ModeClassic})
	service := NewStatusService(controller, history)
	ctx := context.Background()

	status, err := service.Status(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseSetup, status.Session.Phase)
	assert.Equal(t, 0, status.Today.Sessions)

	controller.Dispatch(domain.EventStart)

	status, err = service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRunning, status.Session.Phase)
	assert.Equal(t, 1500, status.Session.RemainingSeconds)
}
