package app

import (
	"strings"
	"testing"
)

func TestFooterHeightForWidthPrefersTwoRowsWhenFit(t *testing.T) {
	m := newTestModel(t)

	if got := m.footerHeightForWidth(240); got != FooterMinRows {
		t.Fatalf("expected %d footer rows at wide width, got %d", FooterMinRows, got)
	}
}

func TestFooterHeightForWidthExpandsToThreeRowsWhenNeeded(t *testing.T) {
	m := newTestModel(t)
	m.status = "Autosave failed while writing the page back to a directory that went away"

	if got := m.footerHeightForWidth(72); got != FooterMaxRows {
		t.Fatalf("expected %d footer rows at narrow width, got %d", FooterMaxRows, got)
	}
}

func TestBuildStatusRowsTruncatesWithEllipsisWhenOverCapacity(t *testing.T) {
	m := newTestModel(t)
	m.status = strings.Repeat("status ", 30)

	rows, fit := m.buildStatusRows(28, FooterMaxRows)
	if fit {
		t.Fatal("expected rows to overflow and require truncation")
	}
	if len(rows) != FooterMaxRows {
		t.Fatalf("expected %d rows, got %d", FooterMaxRows, len(rows))
	}
	if !strings.Contains(rows[len(rows)-1], "…") {
		t.Fatalf("expected ellipsis in final row, got %q", rows[len(rows)-1])
	}
}

func TestStatusHelpSegmentsByMode(t *testing.T) {
	t.Run("typing", func(t *testing.T) {
		m := newTestModel(t)
		joined := strings.Join(m.statusHelpSegments(), " | ")
		for _, want := range []string{"Ctrl+S save", "Alt+S save as", "F2 words", "Ctrl+Q quit"} {
			if !strings.Contains(joined, want) {
				t.Fatalf("expected help to include %q, got %q", want, joined)
			}
		}
	})
	t.Run("prompt", func(t *testing.T) {
		m := newTestModel(t)
		m.mode = modeSaveAsPrompt
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Tab file type") || !strings.Contains(joined, "Esc cancel") {
			t.Fatalf("expected prompt help, got %q", joined)
		}
	})
	t.Run("overlay", func(t *testing.T) {
		m := newTestModel(t)
		m.overlay = overlayAbout
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Any key close") {
			t.Fatalf("expected overlay help, got %q", joined)
		}
	})
}

func TestStatusContextSegmentsShowMetricsAndOptions(t *testing.T) {
	m := newTestModel(t)
	typeString(m, "one two\nthree")

	joined := strings.Join(m.statusContextSegments(), " | ")
	if !strings.Contains(joined, "W:3 C:13 L:2") {
		t.Fatalf("expected metrics, got %q", joined)
	}
	if !strings.Contains(joined, "autosave on") || !strings.Contains(joined, "margins medium") {
		t.Fatalf("expected option summary, got %q", joined)
	}
}

func TestPageMetricsSummaryEmpty(t *testing.T) {
	m := &Model{}
	if got := m.pageMetricsSummary(); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
	m = newTestModel(t)
	if got := m.pageMetricsSummary(); got != "" {
		t.Fatalf("expected empty summary for blank page, got %q", got)
	}
}
