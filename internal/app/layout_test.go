package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/config"
)

func TestCalculateLayoutLimitsLineWidthAndCentresPage(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	layout := m.calculateLayout()
	if layout.PageWidth != LineWidthLimit {
		t.Fatalf("expected page width %d, got %d", LineWidthLimit, layout.PageWidth)
	}
	if layout.TextWidth != LineWidthLimit-2*config.MarginMedium {
		t.Fatalf("expected text width %d, got %d", LineWidthLimit-2*config.MarginMedium, layout.TextWidth)
	}
	if layout.LeftPad != 20+config.MarginMedium {
		t.Fatalf("expected left pad %d, got %d", 20+config.MarginMedium, layout.LeftPad)
	}
	if layout.PageHeight != 40-TitleRows-m.footerHeightForWidth(120) {
		t.Fatalf("unexpected page height %d", layout.PageHeight)
	}
}

func TestCalculateLayoutWithoutLimitUsesFullWidth(t *testing.T) {
	cfg := config.Default()
	cfg.LimitLineWidth = false
	cfg.MarginSize = config.MarginNone
	m := newTestModelWithConfig(t, cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	layout := m.calculateLayout()
	if layout.PageWidth != 120 || layout.TextWidth != 120 || layout.LeftPad != 0 {
		t.Fatalf("expected full-width page, got %+v", layout)
	}
}

func TestCalculateLayoutShrinksMarginsOnTinyTerminals(t *testing.T) {
	cfg := config.Default()
	cfg.MarginSize = config.MarginLarge
	m := newTestModelWithConfig(t, cfg)
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})

	layout := m.calculateLayout()
	if layout.TextWidth < 1 {
		t.Fatalf("expected at least one text column, got %d", layout.TextWidth)
	}
	if layout.LeftPad+layout.TextWidth > 10 {
		t.Fatalf("expected text to fit the terminal, got %+v", layout)
	}
}

func TestPageLinesEmptyPageShowsCaretAndPlaceholder(t *testing.T) {
	cfg := config.Default()
	cfg.CustomStartMessage = "Begin."
	m := newTestModelWithConfig(t, cfg)

	lines := m.pageLines(40)
	if len(lines) != 2 {
		t.Fatalf("expected caret row and placeholder row, got %q", lines)
	}
	if !strings.Contains(lines[1], "Begin.") {
		t.Fatalf("expected placeholder, got %q", lines[1])
	}
}

func TestPageLinesMovesCaretToNextRowWhenFull(t *testing.T) {
	m := newTestModel(t)
	typeString(m, "abcd")

	lines := m.pageLines(4)
	if len(lines) != 2 {
		t.Fatalf("expected caret on its own row, got %q", lines)
	}
	if !strings.Contains(lines[0], "abcd") {
		t.Fatalf("expected text on first row, got %q", lines[0])
	}
}

func TestPageLinesGoldfishModeKeepsLastRows(t *testing.T) {
	cfg := config.Default()
	cfg.GoldfishMode = true
	m := newTestModelWithConfig(t, cfg)
	typeString(m, "one\ntwo\nthree\nfour\nfive")

	lines := m.pageLines(40)
	if len(lines) != GoldfishLines {
		t.Fatalf("expected %d rows, got %q", GoldfishLines, lines)
	}
	if !strings.Contains(lines[0], "three") || !strings.Contains(lines[2], "five") {
		t.Fatalf("expected the last rows, got %q", lines)
	}
}

func TestRefreshPageScrollsToCaret(t *testing.T) {
	m := newTestModel(t)
	typeString(m, strings.Repeat("line\n", 60)+"last words")

	if !m.viewport.AtBottom() {
		t.Fatal("expected viewport to follow the caret")
	}
	if !strings.Contains(m.viewport.View(), "last words") {
		t.Fatalf("expected the last row to be visible, got %q", m.viewport.View())
	}
}
