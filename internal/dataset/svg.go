package dataset

import (
	"fmt"
	"io"
	"strings"
)

// previewCap bounds how many leading samples each polyline shows.
const previewCap = 2000

var palette = []string{"#2563eb", "#dc2626", "#16a34a", "#9333ea", "#ea580c", "#0891b2"}

// WriteSVG renders a min/max-normalized polyline preview of each series'
// leading samples, one stroke color per series.
func WriteSVG(w io.Writer, ds *Dataset, width, height int) error {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 240
	}

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height); err != nil {
		return fmt.Errorf("writing svg header: %w", err)
	}
	fmt.Fprintf(w, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)

	for si, s := range ds.Series {
		vals := s.Values
		if len(vals) > previewCap {
			vals = vals[:previewCap]
		}
		if len(vals) == 0 {
			continue
		}

		lo, hi := vals[0], vals[0]
		for _, v := range vals {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		span := hi - lo
		if span == 0 {
			span = 1
		}

		var pts strings.Builder
		denom := float64(max(len(vals)-1, 1))
		for i, v := range vals {
			x := float64(i) / denom * float64(width)
			y := (1 - (v-lo)/span) * float64(height)
			fmt.Fprintf(&pts, "%.1f,%.1f ", x, y)
		}

		if _, err := fmt.Fprintf(w,
			`<polyline fill="none" stroke="%s" stroke-width="1" points="%s"/>`+"\n",
			palette[si%len(palette)], strings.TrimSpace(pts.String())); err != nil {
			return fmt.Errorf("writing svg polyline: %w", err)
		}
	}

	if _, err := io.WriteString(w, "</svg>\n"); err != nil {
		return fmt.Errorf("writing svg footer: %w", err)
	}
	return nil
}
