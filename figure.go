package heatcluster

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Panel strip sizes and label clearances. Dendrogram and colorbar strips are
// fixed-size regardless of the data; margins leave room for the hanging
// labels.
const (
	dendrogramSize     = 1.2 * vg.Inch
	colorbarWidth      = 0.2 * vg.Inch
	colorbarHistWidth  = 0.45 * vg.Inch
	defaultColorbarPad = 0.5 * vg.Inch

	marginLeft   = vg.Length(18)
	marginRight  = vg.Length(54)
	marginTop    = vg.Length(18)
	marginBottom = vg.Length(64)

	rowLabelGap    = vg.Length(3)
	colLabelGap    = vg.Length(4)
	histCaptionGap = vg.Length(26)
)

// Figure is the assembled clustered heatmap: the heatmap panel, its
// dendrograms and the optional colorbar, plus the region arithmetic that
// lines their shared axes up. Every panel is a bare-axis plot whose data
// rectangle fills its region exactly, so panels sharing an axis scale align
// by construction.
type Figure struct {
	// Width and Height are the canvas size used by Save and WriterTo.
	Width, Height vg.Length

	// ColorbarPad separates the heatmap from the colorbar strip.
	ColorbarPad vg.Length

	// WideColorbar widens the colorbar strip to fit the histogram overlay.
	WideColorbar bool

	Main     *plot.Plot
	Left     *plot.Plot
	Top      *plot.Plot // nil when the column dendrogram is off
	Colorbar *plot.Plot // nil when the colorbar is off
}

// regions carves the canvas into the panel rectangles. The left dendrogram
// and colorbar strips share the heatmap's vertical extent; the top strip
// shares its horizontal extent.
func (f *Figure) regions(c draw.Canvas) (main, left, top, cbar draw.Canvas) {
	xLeft := c.Min.X + marginLeft
	xMainLeft := xLeft + dendrogramSize
	xRight := c.Max.X - marginRight

	var cbWidth vg.Length
	xMainRight := xRight
	if f.Colorbar != nil {
		cbWidth = colorbarWidth
		if f.WideColorbar {
			cbWidth = colorbarHistWidth
		}
		xMainRight = xRight - cbWidth - f.ColorbarPad
	}

	yBottom := c.Min.Y + marginBottom
	yTop := c.Max.Y - marginTop
	yMainTop := yTop
	if f.Top != nil {
		yMainTop = yTop - dendrogramSize
	}

	main = subCanvas(c, xMainLeft, xMainRight, yBottom, yMainTop)
	left = subCanvas(c, xLeft, xMainLeft, yBottom, yMainTop)
	top = subCanvas(c, xMainLeft, xMainRight, yMainTop, yTop)
	cbar = subCanvas(c, xRight-cbWidth, xRight, yBottom, yMainTop)
	return main, left, top, cbar
}

// subCanvas views the rectangle [x0, x1] × [y0, y1] of c's canvas.
func subCanvas(c draw.Canvas, x0, x1, y0, y1 vg.Length) draw.Canvas {
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: x0, Y: y0},
			Max: vg.Point{X: x1, Y: y1},
		},
	}
}

// Draw renders the figure onto dc: a white background, then each panel into
// its region.
func (f *Figure) Draw(dc draw.Canvas) {
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	main, left, top, cbar := f.regions(dc)
	f.Left.Draw(left)
	if f.Top != nil {
		f.Top.Draw(top)
	}
	if f.Colorbar != nil {
		f.Colorbar.Draw(cbar)
	}
	f.Main.Draw(main)
}

// WriterTo returns an io.WriterTo that writes the figure at Width × Height
// in the named format: eps, jpg, pdf, png, svg, tex or tif.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Save renders the figure to a file, inferring the image format from the
// file extension.
func (f *Figure) Save(path string) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		e := w.Close()
		if err == nil {
			err = e
		}
	}()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("heatcluster: no image format extension in %q", path)
	}

	wt, err := f.WriterTo(format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
