package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo-banner/models"
)

func TestSessionService_Lifecycle(t *testing.T) {
	svc := NewSessionService(newTestCatalog(t), NewPresetProvider(nil), &recordingNotifier{}, 0, 0)
	defer svc.Close()

	session := svc.Create()
	require.NotEmpty(t, session.ID())
	assert.Equal(t, 1, svc.Len())

	got, err := svc.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)

	other := svc.Create()
	assert.NotEqual(t, session.ID(), other.ID())

	require.NoError(t, svc.Delete(session.ID()))
	_, err = svc.Get(session.ID())
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete(session.ID()), models.ErrSessionNotFound)
	assert.Equal(t, 1, svc.Len())
}

func TestSessionService_SweepExpiresIdleSessions(t *testing.T) {
	svc := NewSessionService(newTestCatalog(t), NewPresetProvider(nil), &recordingNotifier{}, 0, time.Hour)
	defer svc.Close()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	idle := svc.Create()
	active := svc.Create()

	now = now.Add(45 * time.Minute)
	_, err := svc.Get(active.ID())
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, svc.Sweep())

	_, err = svc.Get(idle.ID())
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.Get(active.ID())
	assert.NoError(t, err)
}

func TestSessionService_CloseEndsSessions(t *testing.T) {
	svc := NewSessionService(newTestCatalog(t), NewPresetProvider(nil), &recordingNotifier{}, 0, time.Minute)
	svc.Create()

	svc.Close()
	svc.Close()
	assert.Zero(t, svc.Len())
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Second, sweepInterval(time.Second))
	assert.Equal(t, 5*time.Minute, sweepInterval(20*time.Minute))
}
