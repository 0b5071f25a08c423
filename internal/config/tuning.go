package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical tuning defaults file.
// This is the single source of truth for all default tuning values.
const DefaultConfigPath = "config/tuning.defaults.json"

// TuningConfig represents the root configuration for reconstruction tuning
// parameters. All fields are optional; the Get* methods supply fallback
// defaults so partial configs are safe.
//
// The empirical constants (150 candidate lines, 5000-unit clip extension)
// live here rather than in code so deployments on hosts with different
// internal unit systems can retune them without a rebuild.
type TuningConfig struct {
	// Candidate generation params
	CandidateLineCount   *int     `json:"candidate_line_count,omitempty"`
	LineLengthMultiplier *float64 `json:"line_length_multiplier,omitempty"`

	// Clipping params
	ClipExtensionMargin *float64 `json:"clip_extension_margin,omitempty"`
	MinSegmentLength    *float64 `json:"min_segment_length,omitempty"`

	// Measurement params
	ProbeNudgeDistance *float64 `json:"probe_nudge_distance,omitempty"`
	FallbackExtent     *float64 `json:"fallback_extent,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
// Use LoadTuningConfig to load actual values from the defaults file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file retain their default values, so
// partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	// Validate the config file path.
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON into empty config. The Get* methods provide fallback
	// defaults for any fields not specified in the JSON.
	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical tuning defaults from DefaultConfigPath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *TuningConfig {
	// Try paths from current dir up to repo root
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // from internal/host/hostfake/
	}
	for _, path := range candidates {
		if cfg, err := LoadTuningConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.CandidateLineCount != nil && *c.CandidateLineCount <= 0 {
		return fmt.Errorf("candidate_line_count must be positive, got %d", *c.CandidateLineCount)
	}
	if c.LineLengthMultiplier != nil && *c.LineLengthMultiplier < 1 {
		return fmt.Errorf("line_length_multiplier must be at least 1, got %f", *c.LineLengthMultiplier)
	}
	if c.ClipExtensionMargin != nil && *c.ClipExtensionMargin < 0 {
		return fmt.Errorf("clip_extension_margin must be non-negative, got %f", *c.ClipExtensionMargin)
	}
	if c.MinSegmentLength != nil && *c.MinSegmentLength <= 0 {
		return fmt.Errorf("min_segment_length must be positive, got %f", *c.MinSegmentLength)
	}
	if c.ProbeNudgeDistance != nil && *c.ProbeNudgeDistance <= 0 {
		return fmt.Errorf("probe_nudge_distance must be positive, got %f", *c.ProbeNudgeDistance)
	}
	if c.FallbackExtent != nil && *c.FallbackExtent <= 0 {
		return fmt.Errorf("fallback_extent must be positive, got %f", *c.FallbackExtent)
	}
	return nil
}

// GetCandidateLineCount returns the candidate_line_count value or the default.
func (c *TuningConfig) GetCandidateLineCount() int {
	if c.CandidateLineCount == nil {
		return 150
	}
	return *c.CandidateLineCount
}

// GetLineLengthMultiplier returns the line_length_multiplier value or the default.
func (c *TuningConfig) GetLineLengthMultiplier() float64 {
	if c.LineLengthMultiplier == nil {
		return 2.0
	}
	return *c.LineLengthMultiplier
}

// GetClipExtensionMargin returns the clip_extension_margin value or the default.
func (c *TuningConfig) GetClipExtensionMargin() float64 {
	if c.ClipExtensionMargin == nil {
		return 5000.0
	}
	return *c.ClipExtensionMargin
}

// GetMinSegmentLength returns the min_segment_length value or the default.
func (c *TuningConfig) GetMinSegmentLength() float64 {
	if c.MinSegmentLength == nil {
		return 1e-6
	}
	return *c.MinSegmentLength
}

// GetProbeNudgeDistance returns the probe_nudge_distance value or the default.
func (c *TuningConfig) GetProbeNudgeDistance() float64 {
	if c.ProbeNudgeDistance == nil {
		return 0.1
	}
	return *c.ProbeNudgeDistance
}

// GetFallbackExtent returns the fallback_extent value or the default.
func (c *TuningConfig) GetFallbackExtent() float64 {
	if c.FallbackExtent == nil {
		return 5.0
	}
	return *c.FallbackExtent
}
