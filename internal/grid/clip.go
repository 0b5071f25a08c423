package grid

import (
	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
)

// SolidClipper intersects candidate lines against a solid body, keeping only
// segments with non-trivial length. Sub-threshold segments are numerical
// noise from the host's boolean engine and are discarded, not reported.
type SolidClipper struct {
	// MinSegmentLength is the noise threshold; kept segments are strictly
	// longer.
	MinSegmentLength float64

	// ExtensionMargin grows each candidate before intersection so clipping
	// artefacts at line ends fall outside the solid.
	ExtensionMargin float64

	// Statistics (optional, for tuning and validation)
	linesProcessed    int64
	linesFailed       int64
	linesEmpty        int64
	segmentsKept      int64
	segmentsDiscarded int64
}

// NewSolidClipper constructs a clipper with the given noise threshold and
// extension margin.
func NewSolidClipper(minSegmentLength, extensionMargin float64) *SolidClipper {
	return &SolidClipper{
		MinSegmentLength: minSegmentLength,
		ExtensionMargin:  extensionMargin,
	}
}

// ClipLines intersects every candidate line with the solid and returns the
// kept segments across all lines, unordered. A line that fails to intersect
// or yields no valid segment is skipped silently; per-line failures never
// abort the batch.
func (c *SolidClipper) ClipLines(solid host.Solid, lines []geom.Line) []geom.Segment {
	var out []geom.Segment
	for _, l := range lines {
		c.linesProcessed++

		segs, err := solid.IntersectLine(l.Extended(c.ExtensionMargin))
		if err != nil {
			c.linesFailed++
			Tracef("clip: intersection failed at %v: %v", l.Center, err)
			continue
		}

		kept := 0
		for _, s := range segs {
			if s.Length() <= c.MinSegmentLength {
				c.segmentsDiscarded++
				continue
			}
			c.segmentsKept++
			kept++
			out = append(out, s)
		}
		if kept == 0 {
			c.linesEmpty++
		}
	}
	return out
}

// Stats returns current clipper statistics for monitoring and parameter tuning.
func (c *SolidClipper) Stats() (processed, failed, empty, kept, discarded int64) {
	return c.linesProcessed, c.linesFailed, c.linesEmpty, c.segmentsKept, c.segmentsDiscarded
}

// ResetStats clears accumulated statistics counters.
func (c *SolidClipper) ResetStats() {
	c.linesProcessed = 0
	c.linesFailed = 0
	c.linesEmpty = 0
	c.segmentsKept = 0
	c.segmentsDiscarded = 0
}
