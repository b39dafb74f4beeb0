package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Success, ColorSuccess)
	assert.Equal(t, p, CurrentPalette)

	_, ok = GetPalette("missing")
	assert.False(t, ok)
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, " Done ", ansi.Strip(StatusBadge(true)))
	assert.Equal(t, " Pending ", ansi.Strip(StatusBadge(false)))
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H1.Color)
}

func TestColorHexPtr(t *testing.T) {
	assert.Nil(t, colorHexPtr(nil))

	hex := colorHexPtr(ColorError)
	require.NotNil(t, hex)
	assert.Equal(t, "#f7768e", *hex)
}
