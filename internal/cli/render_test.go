package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/moneymirror/internal/model"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestRenderDonutBarFillsWidth(t *testing.T) {
	slices := []model.Slice{
		{Category: "Food", StartPct: 0, EndPct: 33.3, Color: "#f43f5e"},
		{Category: "Travel", StartPct: 33.3, EndPct: 66.6, Color: "#3b82f6"},
		{Category: "Bills", StartPct: 66.6, EndPct: 100, Color: "#a855f7"},
	}
	for _, width := range []int{1, 7, 40} {
		bar := RenderDonutBar(slices, width)
		if got := lipgloss.Width(bar); got != width {
			t.Errorf("width %d: rendered width = %d", width, got)
		}
	}

	bar := RenderDonutBar(slices, 30)
	if !strings.Contains(bar, "\x1b[") {
		t.Error("expected ANSI color codes in bar")
	}
}

func TestRenderDonutBarEmpty(t *testing.T) {
	bar := RenderDonutBar(nil, 10)
	if got := lipgloss.Width(bar); got != 10 {
		t.Errorf("empty bar width = %d, want 10", got)
	}
	if strings.Contains(bar, "█") {
		t.Error("empty bar should not contain filled cells")
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	bar := RenderProgressBar(150, 10)
	if !strings.HasSuffix(bar, "100%") {
		t.Errorf("RenderProgressBar(150) = %q, want 100%% suffix", bar)
	}
	if strings.Contains(bar, "░") {
		t.Error("full bar should have no empty cells")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Total"},
		Rows:    [][]string{{"Food", "₹250.00"}},
	})
	if !strings.Contains(out, "Food") || !strings.Contains(out, "Total") {
		t.Errorf("RenderTable missing content:\n%s", out)
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render nothing")
	}
}

func TestRenderTableAlignsWideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers:  []string{"Category", "Note", "Amount"},
		LeftCols: 2,
		Rows: [][]string{
			{"🍔 Food", "lunch", "₹250.00"},
			{"---"},
			{"Salary", "march pay", "₹1,00,000.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d:\n%s", i, w, want, out)
		}
	}
}

func TestAlignCell(t *testing.T) {
	if got := alignCell("ab", 4, true); got != "ab  " {
		t.Errorf("alignCell left = %q, want %q", got, "ab  ")
	}
	if got := alignCell("ab", 4, false); got != "  ab" {
		t.Errorf("alignCell right = %q, want %q", got, "  ab")
	}
	if got := alignCell("abcdef", 4, true); lipgloss.Width(got) != 4 {
		t.Errorf("alignCell truncated width = %d, want 4", lipgloss.Width(got))
	}
}
