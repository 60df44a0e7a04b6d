package export

import (
	"io"
	"math"

	"github.com/olekukonko/tablewriter"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
)

// WriteBreakdownMarkdown renders the breakdown as a markdown table with
// each category's share taken from the matching chart slice.
func WriteBreakdownMarkdown(w io.Writer, breakdown []model.CategoryTotal, slices []model.Slice) {
	share := make(map[string]float64, len(slices))
	for _, s := range slices {
		share[s.Category] = s.Share()
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeader([]string{"Category", "Amount", "Share"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, ct := range breakdown {
		table.Append([]string{
			catalog.IconOf(ct.Category) + " " + ct.Category,
			cli.FormatCurrency(ct.Total),
			cli.FormatPercent(int(math.Round(share[ct.Category]))),
		})
	}

	table.Render()
}
