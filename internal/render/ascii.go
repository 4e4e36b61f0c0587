package render

import (
	"strings"

	"github.com/san-kum/wavelab/internal/wave"
)

var ramp = []rune(" .:-=+*#%@")

// Heatmap renders a field as a character-ramp heatmap with the grid
// origin at the lower-left. Cells are doubled horizontally to roughly
// square up terminal character aspect; maxCols caps the output width in
// characters, downsampling the field as needed.
func Heatmap(f *wave.Field, sc Scale, maxCols int) string {
	pts := f.Points()
	if maxCols < 2 {
		maxCols = 2 // one doubled cell is the minimum rendered width
	}
	stride := 1
	for (pts+stride-1)/stride*2 > maxCols {
		stride++
	}

	var sb strings.Builder
	for j := pts - 1; j >= 0; j -= stride {
		for i := 0; i < pts; i += stride {
			k := int(sc.Normalize(f.At(i, j)) * float64(len(ramp)-1))
			sb.WriteRune(ramp[k])
			sb.WriteRune(ramp[k])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
