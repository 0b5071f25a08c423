// Command gridline runs the grid reconstruction pipeline against a synthetic
// slab and prints the resulting curves. It exists for tuning and for
// demonstrating the pipeline without a live host session.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atlasbim/gridline/internal/config"
	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/grid"
	"github.com/atlasbim/gridline/internal/host"
	"github.com/atlasbim/gridline/internal/host/hostfake"
	"github.com/atlasbim/gridline/internal/monitor"
	"github.com/atlasbim/gridline/internal/units"
	"github.com/atlasbim/gridline/internal/version"
)

type curveJSON struct {
	Start  [3]float64 `json:"start"`
	End    [3]float64 `json:"end"`
	Length float64    `json:"length"`
}

type resultJSON struct {
	Units  string      `json:"units"`
	Count  int         `json:"count"`
	Curves []curveJSON `json:"curves"`
}

func main() {
	var (
		width      = flag.Float64("width", 10, "slab width (X span) in metres")
		depth      = flag.Float64("depth", 6, "slab depth (Y span) in metres")
		pitchU     = flag.Float64("pitch-u", 2, "anchor spacing along the primary axis in metres")
		pitchV     = flag.Float64("pitch-v", 2, "anchor spacing along the orthogonal axis in metres")
		boundary   = flag.Bool("boundary", false, "append the face boundary curves to the output")
		native     = flag.Bool("native", false, "serve grid lines through the native fast path")
		format     = flag.String("format", "text", "output format: text or json")
		outUnits   = flag.String("units", units.M, "output length units: "+units.GetValidUnitsString())
		configPath = flag.String("config", "", "path to a tuning config JSON (defaults used when empty)")
		plotDir    = flag.String("plot", "", "directory to write a plan-view plot into (disabled when empty)")
		verbose    = flag.Bool("verbose", false, "enable diagnostic logging")
		showVer    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	if !units.IsValid(*outUnits) {
		log.Fatalf("invalid units %q, valid values: %s", *outUnits, units.GetValidUnitsString())
	}

	writers := grid.LogWriters{Ops: os.Stderr}
	if *verbose {
		writers.Diag = os.Stderr
	}
	grid.SetLogWriters(writers)

	tuning := config.EmptyTuningConfig()
	if *configPath != "" {
		var err error
		tuning, err = config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("loading tuning config: %v", err)
		}
	}
	cfg := grid.ConfigFromTuning(tuning)

	slab := hostfake.NewSlab(*width, *depth)
	ctx := hostfake.NewContext(slab, *pitchU, *pitchV)

	var obj host.Object = slab
	if *native {
		obj = &hostfake.NativeSlab{Slab: slab, PitchU: *pitchU, PitchV: *pitchV}
	}

	r, err := grid.NewReconstructor(ctx, cfg)
	if err != nil {
		log.Fatalf("building reconstructor: %v", err)
	}
	curves, err := r.Reconstruct(obj, *boundary)
	if err != nil {
		log.Fatalf("reconstruction failed: %v", err)
	}

	switch *format {
	case "json":
		printJSON(curves, *outUnits)
	case "text":
		printText(curves, *outUnits)
	default:
		log.Fatalf("invalid format %q, valid values: text, json", *format)
	}

	if *plotDir != "" {
		gp := monitor.NewGridPlot(*plotDir)
		file, err := gp.Save("gridline", curves, nil)
		if err != nil {
			log.Fatalf("writing plot: %v", err)
		}
		fmt.Fprintf(os.Stderr, "plot written to %s\n", file)
	}
}

func printText(curves []geom.Curve, u string) {
	for _, c := range curves {
		s, e := c.Start(), c.End()
		fmt.Printf("(%.4f, %.4f, %.4f) -> (%.4f, %.4f, %.4f)  length=%.4f %s\n",
			units.ConvertLength(s.X, u), units.ConvertLength(s.Y, u), units.ConvertLength(s.Z, u),
			units.ConvertLength(e.X, u), units.ConvertLength(e.Y, u), units.ConvertLength(e.Z, u),
			units.ConvertLength(c.Length(), u), u)
	}
	fmt.Printf("%d curves\n", len(curves))
}

func printJSON(curves []geom.Curve, u string) {
	out := resultJSON{Units: u, Count: len(curves)}
	for _, c := range curves {
		s, e := c.Start(), c.End()
		out.Curves = append(out.Curves, curveJSON{
			Start:  [3]float64{units.ConvertLength(s.X, u), units.ConvertLength(s.Y, u), units.ConvertLength(s.Z, u)},
			End:    [3]float64{units.ConvertLength(e.X, u), units.ConvertLength(e.Y, u), units.ConvertLength(e.Z, u)},
			Length: units.ConvertLength(c.Length(), u),
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encoding output: %v", err)
	}
}
