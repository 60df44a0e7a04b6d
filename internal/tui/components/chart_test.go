package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

func TestDonutBarFillsWidth(t *testing.T) {
	slices := []model.Slice{
		{Category: "Food", Value: decimal.NewFromInt(1), StartPct: 0, EndPct: 33.3, Color: "#f43f5e"},
		{Category: "Bills", Value: decimal.NewFromInt(2), StartPct: 33.3, EndPct: 100, Color: "#a855f7"},
	}
	for _, w := range []int{1, 7, 40} {
		if got := lipgloss.Width(DonutBar(slices, w)); got != w {
			t.Errorf("DonutBar width %d = %d", w, got)
		}
	}
	if got := lipgloss.Width(DonutBar(nil, 12)); got != 12 {
		t.Errorf("empty DonutBar width = %d, want 12", got)
	}
}

func TestLegendWraps(t *testing.T) {
	slices := []model.Slice{
		{Category: "Food", StartPct: 0, EndPct: 50},
		{Category: "Shopping", StartPct: 50, EndPct: 80},
		{Category: "Bills", StartPct: 80, EndPct: 100},
	}
	out := Legend(slices, 20)
	if lines := strings.Split(out, "\n"); len(lines) < 2 {
		t.Errorf("expected legend to wrap at width 20, got %q", out)
	}
	if !strings.Contains(out, "Food 50%") {
		t.Errorf("legend missing Food share: %q", out)
	}
}

func TestBarChartLabels(t *testing.T) {
	theme.SetActive("slate")
	out := BarChart([]float64{0, 120, 40, 0, 0, 300, 10},
		[]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		theme.Active.Expense, 60, 8)
	if !strings.Contains(out, "Fri") {
		t.Errorf("x labels missing: %q", out)
	}
	if !strings.Contains(out, "└") {
		t.Error("x axis missing")
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2000, "2k"},
		{2500, "2.5k"},
		{1_000_000, "1M"},
		{50, "50"},
		{0.5, "0.50"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.in); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGoalBarClamps(t *testing.T) {
	out := GoalBar("Trip", 1.7, 100, "₹5,500 / ₹5,000", 10, 20)
	if !strings.Contains(out, "100%") {
		t.Errorf("GoalBar = %q, want 100%%", out)
	}
	if ColorForGoal(1.7) != string(theme.Active.GoalReached) {
		t.Error("over-funded goal should use the reached color")
	}
}
