package jobs

import (
	"testing"
	"time"

	"KasfoMonitor/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExpiredSessions(t *testing.T) {
	m := session.NewManager()
	m.CreateSession(-time.Second)
	m.CreateSession(-time.Second)
	live := m.CreateSession(time.Hour)

	assert.Equal(t, 2, SweepExpiredSessions(m))
	assert.Equal(t, 0, SweepExpiredSessions(m))
	_, ok := m.GetSession(live.ID)
	assert.True(t, ok)
}

func TestRunSessionSweeper(t *testing.T) {
	m := session.NewManager()

	c, err := RunSessionSweeper(&SweepConfig{Schedule: "@every 1h", TimeZone: "Nowhere/Invalid"}, m)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	assert.Equal(t, time.UTC, c.Location())
	<-c.Stop().Done()

	_, err = RunSessionSweeper(&SweepConfig{Schedule: "not a schedule"}, m)
	assert.Error(t, err)
}

func TestCronServiceLifecycle(t *testing.T) {
	svc := NewCronService(map[string]interface{}{"sweep_schedule": "@every 1h"}, session.NewManager())
	assert.Equal(t, "cron", svc.Name())
	require.NoError(t, svc.Start())
	require.NoError(t, svc.Stop())

	bad := NewCronService(map[string]interface{}{"sweep_schedule": "bogus"}, session.NewManager())
	assert.Error(t, bad.Start())
}
