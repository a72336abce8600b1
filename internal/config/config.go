// Package config handles xformtool configuration loading and validation.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Projection modes.
const (
	ModePerspective  = "perspective"
	ModeOrthographic = "orthographic"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all tool settings.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig describes the projection matrix. Width and Height size
// the orthographic volume and are ignored in perspective mode.
type ProjectionConfig struct {
	Mode   string  `yaml:"mode"`
	FOVDeg float32 `yaml:"fov_deg"`
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// CameraConfig holds orbit camera settings. Angles are in degrees.
type CameraConfig struct {
	Target      [3]float32 `yaml:"target"`
	Distance    float32    `yaml:"distance"`
	YawDeg      float32    `yaml:"yaw_deg"`
	PitchDeg    float32    `yaml:"pitch_deg"`
	MinDistance float32    `yaml:"min_distance"`
	MaxDistance float32    `yaml:"max_distance"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			Mode:   ModePerspective,
			FOVDeg: 60,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    1000,
			Width:  20,
			Height: 11.25,
		},
		Camera: CameraConfig{
			Distance:    10,
			YawDeg:      0,
			PitchDeg:    30,
			MinDistance: 1,
			MaxDistance: 500,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	p := c.Projection

	switch p.Mode {
	case ModePerspective:
		if p.FOVDeg <= 0 || p.FOVDeg >= 180 {
			err = multierr.Append(err, fmt.Errorf("projection.fov_deg %g must be in (0, 180)", p.FOVDeg))
		}
		if p.Aspect <= 0 {
			err = multierr.Append(err, fmt.Errorf("projection.aspect %g must be positive", p.Aspect))
		}
	case ModeOrthographic:
		if p.Width <= 0 || p.Height <= 0 {
			err = multierr.Append(err, fmt.Errorf("projection.width/height %gx%g must be positive", p.Width, p.Height))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("projection.mode %q must be %q or %q", p.Mode, ModePerspective, ModeOrthographic))
	}
	if p.Near <= 0 {
		err = multierr.Append(err, fmt.Errorf("projection.near %g must be positive", p.Near))
	}
	if p.Far <= p.Near {
		err = multierr.Append(err, fmt.Errorf("projection.far %g must exceed near %g", p.Far, p.Near))
	}

	cam := c.Camera
	if cam.MinDistance <= 0 || cam.MaxDistance < cam.MinDistance {
		err = multierr.Append(err, fmt.Errorf("camera distance limits [%g, %g] are invalid", cam.MinDistance, cam.MaxDistance))
	}
	if cam.Distance < cam.MinDistance || cam.Distance > cam.MaxDistance {
		err = multierr.Append(err, fmt.Errorf("camera.distance %g outside [%g, %g]", cam.Distance, cam.MinDistance, cam.MaxDistance))
	}

	if c.Output.Format != FormatText && c.Output.Format != FormatYAML {
		err = multierr.Append(err, fmt.Errorf("output.format %q must be %q or %q", c.Output.Format, FormatText, FormatYAML))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return err
}
