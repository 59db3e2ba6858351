package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestConfig(), cfg)
}

func TestMaxJumpDistance(t *testing.T) {
	cfg := DefaultQuestConfig()

	// t_up = 12/0.5 = 24, t_total = 48, 4 * 48 * 0.9 = 172.8
	assert.InDelta(t, 172.8, cfg.MaxJumpDistance(), 1e-9)

	lo, hi := cfg.GapRange()
	assert.Equal(t, 120.0, lo)
	assert.InDelta(t, 172.8, hi, 1e-9)

	cfg.Physics.MoveSpeed = 10
	_, hi = cfg.GapRange()
	assert.Equal(t, 220.0, hi, "gap must be clamped to max_gap")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuestConfig)
		want   error
	}{
		{"defaults", func(*QuestConfig) {}, nil},
		{"zero gravity", func(c *QuestConfig) { c.Physics.Gravity = 0 }, ErrInvalidPhysics},
		{"upward gravity", func(c *QuestConfig) { c.Physics.Gravity = -0.5 }, ErrInvalidPhysics},
		{"downward jump", func(c *QuestConfig) { c.Physics.JumpForce = 3 }, ErrInvalidPhysics},
		{"no move speed", func(c *QuestConfig) { c.Physics.MoveSpeed = 0 }, ErrInvalidPhysics},
		{"negative coyote", func(c *QuestConfig) { c.Coyote.TimeMax = -1 }, ErrInvalidPhysics},
		{"weak jump", func(c *QuestConfig) { c.Physics.JumpForce = -6 }, ErrUnreachableGap},
		{"slow runner", func(c *QuestConfig) { c.Physics.MoveSpeed = 2 }, ErrUnreachableGap},
		{"inverted band", func(c *QuestConfig) { c.Spawner.MinY = 500 }, ErrInvalidBounds},
		{"max gap below min", func(c *QuestConfig) { c.Spawner.MaxGap = 100 }, ErrInvalidBounds},
		{"zero margin", func(c *QuestConfig) { c.Spawner.ReachMargin = 0 }, ErrInvalidBounds},
		{"no screen", func(c *QuestConfig) { c.World.ScreenWidth = 0 }, ErrInvalidBounds},
		{"no camera divisor", func(c *QuestConfig) { c.World.CameraDivisor = 0 }, ErrInvalidBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuestConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.45\n"))
	require.NoError(t, err)

	want := DefaultQuestConfig()
	want.Physics.Gravity = 0.45
	assert.Equal(t, want, cfg)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("physics: [not, a, map"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  jump_force: -16\n"), 0o600))

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, -16.0, cfg.Physics.JumpForce)
	assert.Equal(t, 0.5, cfg.Physics.Gravity)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultQuestConfig()
	cfg.Coyote.TimeMax = 0.2

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestWatcherDeliversValidatedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  move_speed: 5\n"), 0o600))

	select {
	case cfg := <-w.Configs:
		assert.Equal(t, 5.0, cfg.Physics.MoveSpeed)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  jump_force: -4\n"), 0o600))

	select {
	case cfg := <-w.Configs:
		t.Fatalf("invalid config should not be delivered, got %+v", cfg.Physics)
	case err := <-w.Errors:
		assert.ErrorIs(t, err, ErrUnreachableGap)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher error")
	}
}
