package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/theirongolddev/moneymirror/internal/model"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("no data to chart")

// Chart dimensions in pixels.
const (
	ChartWidth  = 512
	ChartHeight = 512
)

// WriteChartPNG renders the slices as a pie chart PNG in slice order and
// category color.
func WriteChartPNG(w io.Writer, slices []model.Slice) error {
	if len(slices) == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, chart.Value{
			Label: s.Category,
			Value: s.Value.InexactFloat64(),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pie := chart.PieChart{
		Width:  ChartWidth,
		Height: ChartHeight,
		Values: values,
	}

	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
