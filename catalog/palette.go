package catalog

// regionPalette is the plotly qualitative cycle. Rows pick their fill color
// in table order, wrapping past ten, so colors are categorical rather than
// meaningful and stay stable across runs.
var regionPalette = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

// RowColors returns the fill color of each row, parallel to the input.
func RowColors(rows []Row) []string {
	colors := make([]string, len(rows))
	for idx := range rows {
		colors[idx] = regionPalette[idx%len(regionPalette)]
	}
	return colors
}
