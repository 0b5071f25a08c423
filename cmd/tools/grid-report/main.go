// Command grid-report renders a reconstruction run as a standalone HTML
// scatter chart. It is a debugging aid for eyeballing inferred grids in a
// browser without any host platform or UI stack.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/atlasbim/gridline/internal/config"
	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/grid"
	"github.com/atlasbim/gridline/internal/host/hostfake"
)

func main() {
	var (
		width    = flag.Float64("width", 10, "slab width (X span) in metres")
		depth    = flag.Float64("depth", 6, "slab depth (Y span) in metres")
		pitchU   = flag.Float64("pitch-u", 2, "anchor spacing along the primary axis in metres")
		pitchV   = flag.Float64("pitch-v", 2, "anchor spacing along the orthogonal axis in metres")
		boundary = flag.Bool("boundary", true, "include the face boundary curves")
		out      = flag.String("out", "grid-report.html", "output HTML file")
		samples  = flag.Int("samples", 20, "sample points rendered per curve")
	)
	flag.Parse()

	slab := hostfake.NewSlab(*width, *depth)
	ctx := hostfake.NewContext(slab, *pitchU, *pitchV)
	r, err := grid.NewReconstructor(ctx, grid.ConfigFromTuning(config.EmptyTuningConfig()))
	if err != nil {
		log.Fatalf("building reconstructor: %v", err)
	}
	curves, err := r.Reconstruct(slab, *boundary)
	if err != nil {
		log.Fatalf("reconstruction failed: %v", err)
	}

	data := make([]opts.ScatterData, 0, len(curves)*(*samples))
	for _, c := range curves {
		for _, p := range samplePoints(c, *samples) {
			data = append(data, opts.ScatterData{Value: []interface{}{p[0], p[1]}})
		}
	}

	pad := 1.2 * (*width) / 2
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Reconstructed Grid", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Reconstructed Grid (plan view)",
			Subtitle: fmt.Sprintf("curves=%d pitchU=%.2f pitchV=%.2f", len(curves), *pitchU, *pitchV),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (m)"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (m)"}),
	)
	scatter.AddSeries("grid", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer f.Close()
	if err := scatter.Render(f); err != nil {
		log.Fatalf("rendering chart: %v", err)
	}
	fmt.Printf("report written to %s (%d curves)\n", *out, len(curves))
}

// samplePoints returns n evenly spaced plan-view points along the curve.
func samplePoints(c geom.Curve, n int) [][2]float64 {
	if n < 2 {
		n = 2
	}
	s, e := c.Start(), c.End()
	pts := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, [2]float64{
			s.X + t*(e.X-s.X),
			s.Y + t*(e.Y-s.Y),
		})
	}
	return pts
}
