package grid

import (
	"fmt"

	"github.com/atlasbim/gridline/internal/config"
)

// Config provides a configuration builder for the reconstruction pipeline.
// It allows setting parameters with defaults and validation before creating
// a Reconstructor.
type Config struct {
	// Candidate generation
	CandidateLineCount   int     // Lines generated per side per axis (default: 150)
	LineLengthMultiplier float64 // Line length as a multiple of the max planar extent (default: 2.0)

	// Clipping
	ClipExtensionMargin float64 // Pre-intersection extension of each candidate (default: 5000)
	MinSegmentLength    float64 // Segments at or below this are discarded as noise (default: 1e-6)

	// Measurement
	ProbeNudgeDistance float64 // Displacement used to dirty the probe before regenerate (default: 0.1)
	FallbackExtent     float64 // Extent estimate when the probe reports none (default: 5.0)
}

// DefaultConfig returns a Config loaded from the canonical tuning defaults
// file (config/tuning.defaults.json). Panics if the file cannot be found —
// intended for tests and binaries that have already validated config
// availability.
func DefaultConfig() *Config {
	cfg := config.MustLoadDefaultConfig()
	return ConfigFromTuning(cfg)
}

// ConfigFromTuning builds a Config from a loaded TuningConfig. Use this in
// production code where the TuningConfig is already loaded.
func ConfigFromTuning(cfg *config.TuningConfig) *Config {
	return &Config{
		CandidateLineCount:   cfg.GetCandidateLineCount(),
		LineLengthMultiplier: cfg.GetLineLengthMultiplier(),
		ClipExtensionMargin:  cfg.GetClipExtensionMargin(),
		MinSegmentLength:     cfg.GetMinSegmentLength(),
		ProbeNudgeDistance:   cfg.GetProbeNudgeDistance(),
		FallbackExtent:       cfg.GetFallbackExtent(),
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.CandidateLineCount <= 0 {
		return fmt.Errorf("CandidateLineCount must be positive, got %d", c.CandidateLineCount)
	}
	if c.LineLengthMultiplier < 1 {
		return fmt.Errorf("LineLengthMultiplier must be at least 1, got %f", c.LineLengthMultiplier)
	}
	if c.ClipExtensionMargin < 0 {
		return fmt.Errorf("ClipExtensionMargin must be non-negative, got %f", c.ClipExtensionMargin)
	}
	if c.MinSegmentLength <= 0 {
		return fmt.Errorf("MinSegmentLength must be positive, got %f", c.MinSegmentLength)
	}
	if c.ProbeNudgeDistance <= 0 {
		return fmt.Errorf("ProbeNudgeDistance must be positive, got %f", c.ProbeNudgeDistance)
	}
	if c.FallbackExtent <= 0 {
		return fmt.Errorf("FallbackExtent must be positive, got %f", c.FallbackExtent)
	}
	return nil
}

// WithCandidateLineCount sets the per-side candidate line count.
func (c *Config) WithCandidateLineCount(n int) *Config {
	c.CandidateLineCount = n
	return c
}

// WithLineLengthMultiplier sets the line length multiplier.
func (c *Config) WithLineLengthMultiplier(m float64) *Config {
	c.LineLengthMultiplier = m
	return c
}

// WithClipExtensionMargin sets the pre-intersection extension margin.
func (c *Config) WithClipExtensionMargin(m float64) *Config {
	c.ClipExtensionMargin = m
	return c
}

// WithMinSegmentLength sets the noise threshold for clipped segments.
func (c *Config) WithMinSegmentLength(l float64) *Config {
	c.MinSegmentLength = l
	return c
}

// WithProbeNudgeDistance sets the probe nudge displacement.
func (c *Config) WithProbeNudgeDistance(d float64) *Config {
	c.ProbeNudgeDistance = d
	return c
}

// WithFallbackExtent sets the extent estimate used when the probe reports
// no bounding extent.
func (c *Config) WithFallbackExtent(e float64) *Config {
	c.FallbackExtent = e
	return c
}
