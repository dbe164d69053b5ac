package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()

	assert.Equal(t, 1.0, Player.Speed)
	assert.Equal(t, 2.0, Player.MaxSpeed)
	assert.Equal(t, 90, Player.RampFrames)
	assert.Equal(t, 20, Player.MaxHealth)
	assert.Equal(t, 60, Player.RegenFrames)

	assert.Equal(t, 40.0, Melee.WanderRadius)
	assert.Equal(t, 60.0, Melee.TargetRange)
	assert.Equal(t, 4.0, Melee.AttackRangeSq)

	assert.Equal(t, 1.5, Camera.Speed)
	assert.Equal(t, 75.0, HUD.BarLength)
	assert.Contains(t, Input.Bindings, ActionDie)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	err := LoadOverrides(strings.NewReader(`
player:
  max_speed: 3
camera:
  radius: 10
debug:
  enabled: true
`))
	require.NoError(t, err)

	assert.Equal(t, 3.0, Player.MaxSpeed)
	assert.Equal(t, 1.0, Player.Speed, "unlisted fields keep their value")
	assert.Equal(t, 10.0, Camera.Radius)
	assert.Equal(t, 1.5, Camera.Speed)
	assert.True(t, Debug.Enabled)
	assert.Equal(t, 320, C.Width)
}

func TestLoadOverridesEmpty(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	require.NoError(t, LoadOverrides(strings.NewReader("")))
	assert.Equal(t, 2.0, Player.MaxSpeed)
}

func TestLoadOverridesRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"speed above max", "player: {speed: 5}", ErrInvalid},
		{"zero width", "game: {width: 0}", ErrInvalid},
		{"health above max", "player: {start_health: 30}", ErrInvalid},
		{"zero start health", "player: {start_health: 0}", ErrInvalid},
		{"negative damage", "melee: {damage: -1}", ErrInvalid},
		{"negative camera", "camera: {radius: -1}", ErrInvalid},
		{"unknown action", "bindings: {jump: []}", ErrUnknownAction},
		{"malformed", "player: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(Reset)
			Reset()

			err := LoadOverrides(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
			assert.Equal(t, 1.0, Player.Speed, "nothing applied")
			assert.Equal(t, 320, C.Width)
		})
	}
}

func TestParseAction(t *testing.T) {
	id, ok := ParseAction("move_down")
	require.True(t, ok)
	assert.Equal(t, ActionMoveDown, id)
	assert.Equal(t, "move_down", id.String())

	_, ok = ParseAction("none")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ActionCount.String())
}

func TestLoadOverridesFile(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := filepath.Join(t.TempDir(), "tilecrawl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("melee: {wander_radius: 80}\n"), 0o644))
	require.NoError(t, LoadOverridesFile(path))
	assert.Equal(t, 80.0, Melee.WanderRadius)

	assert.Error(t, LoadOverridesFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tilecrawl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: {enabled: false}\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("debug: {enabled: true}\n"), 0o644))

	select {
	case got := <-w.Changes:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
