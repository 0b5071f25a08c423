// Package monitor provides offline plotting of reconstruction runs for
// tuning and debugging. Plots are plan views (X/Y) of the reconstructed
// curves, written as PNG files; nothing here is needed on the hot path.
package monitor

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/atlasbim/gridline/internal/geom"
)

// GridPlot writes plan-view plots of reconstructed grids. It is safe for
// concurrent use; each Save call produces one file.
type GridPlot struct {
	mu        sync.Mutex
	outputDir string
}

// NewGridPlot creates a plotter writing into outputDir. The directory is
// created on first save.
func NewGridPlot(outputDir string) *GridPlot {
	return &GridPlot{outputDir: outputDir}
}

var (
	gridColor     = color.RGBA{R: 30, G: 100, B: 200, A: 255}
	boundaryColor = color.RGBA{R: 200, G: 60, B: 30, A: 255}
)

// Save renders the grid curves and boundary curves into a single plan view
// and writes it as <name>.png. Returns the written file path.
func (gp *GridPlot) Save(name string, gridCurves, boundaryCurves []geom.Curve) (string, error) {
	gp.mu.Lock()
	defer gp.mu.Unlock()

	if err := os.MkdirAll(gp.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if err := addCurves(p, gridCurves, gridColor, vg.Points(1)); err != nil {
		return "", err
	}
	if err := addCurves(p, boundaryCurves, boundaryColor, vg.Points(2)); err != nil {
		return "", err
	}

	file := filepath.Join(gp.outputDir, name+".png")
	if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return "", fmt.Errorf("failed to save plot: %w", err)
	}
	return file, nil
}

// addCurves adds each curve as a two-point line in plan view.
func addCurves(p *plot.Plot, curves []geom.Curve, c color.Color, width vg.Length) error {
	for _, cv := range curves {
		pts := plotter.XYs{
			{X: cv.Start().X, Y: cv.Start().Y},
			{X: cv.End().X, Y: cv.End().Y},
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line: %w", err)
		}
		line.Color = c
		line.Width = width
		p.Add(line)
	}
	return nil
}
