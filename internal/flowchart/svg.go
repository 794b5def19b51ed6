package flowchart

import (
	"fmt"
	"io"
)

// BezierPath renders the link's cubic bezier. Both control points sit at
// the horizontal midpoint between the columns, which pulls the band flat
// at each end and curved through the middle.
func (l Link) BezierPath() string {
	midX := (l.X1 + l.X2) / 2
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
		l.X1, l.Y1, midX, l.Y1, midX, l.Y2, l.X2, l.Y2)
}

// WriteSVG serializes the layout as a standalone SVG document. An empty
// layout renders a "no data" placeholder instead of geometry.
func WriteSVG(w io.Writer, l Layout) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		l.Width, l.Height, l.Width, l.Height); err != nil {
		return err
	}

	if l.Empty {
		if _, err := fmt.Fprintf(w,
			"  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" fill=\"#666666\">No data for this period</text>\n",
			l.Width/2, l.Height/2); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</svg>\n")
		return err
	}

	for _, link := range l.Links {
		if _, err := fmt.Fprintf(w,
			"  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.1f\" stroke-opacity=\"%.2f\"/>\n",
			link.BezierPath(), link.Color, link.Width, link.Opacity); err != nil {
			return err
		}
	}

	for _, b := range append(append([]Block(nil), l.Left...), l.Right...) {
		if _, err := fmt.Fprintf(w,
			"  <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" fill-opacity=\"%.2f\"/>\n",
			b.X, b.Y, b.Width, b.Height, b.Color, b.Opacity); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			"  <text x=\"%.1f\" y=\"%.1f\" font-size=\"12\" fill=\"#222222\">%s</text>\n",
			b.X+4, b.Y+b.Height/2+4, b.Label); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}
