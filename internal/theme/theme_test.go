package theme

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"wallpaper/internal/domain/wallconfig"
)

func TestFor(t *testing.T) {
	assert.Equal(t, wallconfig.ThemeClassic, For(wallconfig.ThemeClassic).ID)
	assert.Equal(t, wallconfig.ThemeGirly, For(wallconfig.ThemeGirly).ID)
	assert.Equal(t, wallconfig.ThemeClassic, For("neon").ID)
}

func TestMotifOnlyForGirly(t *testing.T) {
	assert.False(t, For(wallconfig.ThemeClassic).HasMotif())
	assert.True(t, For(wallconfig.ThemeGirly).HasMotif())
}

func TestColorsAreHex(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	for _, tk := range []Tokens{classic, girly} {
		for _, c := range []string{
			tk.Background.Start, tk.Background.Mid, tk.Background.End,
			tk.Vignette.Inner, tk.Vignette.Mid, tk.Vignette.Outer,
			tk.Grain.A, tk.Grain.B, tk.Grain.C, tk.Grain.D,
			tk.Card.Start, tk.Card.End, tk.Card.BorderStart, tk.Card.BorderMid, tk.Card.BorderEnd,
			tk.Card.InnerStroke, tk.Card.GlowColor,
			tk.Text.GoldStart, tk.Text.GoldMid, tk.Text.GoldEnd, tk.Text.HeaderSub,
			tk.Text.ModeTitle, tk.Text.ColLabel, tk.Text.ColValue,
			tk.IconStroke, tk.Mosque.Stroke, tk.Motif.StarColor, tk.Motif.CrescentColor,
		} {
			assert.Regexp(t, hex, c, "theme %s", tk.ID)
		}
	}
}
