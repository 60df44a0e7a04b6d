package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(80, 3)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 80 {
		t.Errorf("sum = %d, want 80", sum)
	}
	if widths[0] != 27 || widths[2] != 26 {
		t.Errorf("widths = %v, want [27 27 26]", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow(10, 0) should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("slate")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want %d", len(lines), tallLines)
	}

	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI codes, padding will render unstyled", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("slate")

	row := MetricCardRow([]Metric{
		{Label: "Balance", Value: "₹750.00", Color: theme.Active.Income},
		{Label: "Income", Value: "₹1,000.00"},
		{Label: "Expense", Value: "₹250.00", Delta: "today ₹250.00"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	theme.SetActive("slate")

	for active := range Tabs {
		bar := RenderTabBar(active, 0)
		want := len(Tabs) - 1
		for _, tab := range Tabs {
			want += TabVisualWidth(tab)
		}
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d width = %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('p'); got != 1 {
		t.Errorf("TabIdxByKey('p') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
