package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

func TestPaletteRenderWithoutColor(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "hello")

	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPaletteStyleFallback(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	if got := p.Style(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered as %q", got)
	}
	for _, c := range core.Colors() {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("palette missing color %v", c)
		}
	}
}
