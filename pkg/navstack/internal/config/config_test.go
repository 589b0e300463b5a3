package config

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack/transition"
)

func TestDefault_MatchesTransitionDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, transition.DefaultConfig(), cfg.Transition())
	assert.NoError(t, cfg.Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
language = "de"
log_level = "debug"
touch_device = "/dev/input/event3"

[gesture]
edge_width = 40.0
transition_ms = 250

[bar]
height = 50.0
show_back_label = false

[theme]
accent = "#FF8800"
surface = "101010"
`))
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/dev/input/event3", cfg.TouchDevice)

	tr := cfg.Transition()
	assert.Equal(t, 40.0, tr.EdgeWidth)
	assert.Equal(t, 0.3, tr.CompletionThreshold, "unset keys keep defaults")
	assert.Equal(t, 250*time.Millisecond, tr.Duration)

	assert.Equal(t, 50.0, cfg.Metrics().Height)
	assert.False(t, cfg.Bar.ShowBackLabel)

	colors, err := cfg.Theme.Colors()
	require.NoError(t, err)
	require.NotNil(t, colors.Accent)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x88, A: 0xFF}, *colors.Accent)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}, *colors.Surface)
	assert.Nil(t, colors.Text)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"syntax", `[gesture`},
		{"unknown key", "[gesture]\nedge = 3"},
		{"threshold out of range", "[gesture]\ncompletion_threshold = 1.5"},
		{"negative duration", "[gesture]\ntransition_ms = -1"},
		{"zero bar height", "[bar]\nheight = 0.0"},
		{"bad color", "[theme]\naccent = \"teal\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#008080", color.RGBA{G: 0x80, B: 0x80, A: 0xFF}},
		{"0xFFFFFF", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{" 00000080 ", color.RGBA{A: 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#FFF", "GGGGGG", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidConfig, bad)
	}
}

func TestWatch_DeliversReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navstack.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gesture]\nedge_width = 20.0\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	updates, err := Watch(ctx, path, logger)
	require.NoError(t, err)

	// an invalid save is skipped
	require.NoError(t, os.WriteFile(path, []byte("[gesture]\nedge_width = -5.0\n"), 0644))
	time.Sleep(3 * reloadDelay)
	require.NoError(t, os.WriteFile(path, []byte("[gesture]\nedge_width = 48.0\n"), 0644))

	select {
	case cfg := <-updates:
		assert.Equal(t, 48.0, cfg.Gesture.EdgeWidth)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	cancel()
	select {
	case _, open := <-updates:
		assert.False(t, open, "closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navstack.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0644))

	select {
	case <-updates:
		t.Fatal("reload for an unrelated file")
	case <-time.After(5 * reloadDelay):
	}
}

func TestPublish_KeepsNewest(t *testing.T) {
	out := make(chan Config, 1)
	a, b := Default(), Default()
	a.Language, b.Language = "en", "de"

	publish(out, a)
	publish(out, b)

	assert.Equal(t, "de", (<-out).Language)
}
