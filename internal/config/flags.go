package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagFOV    = flag.Float64("fov", 0, "Vertical field of view in degrees")
	flagAspect = flag.Float64("aspect", 0, "Viewport aspect ratio (width/height)")
	flagNear   = flag.Float64("near", 0, "Near clip distance")
	flagFar    = flag.Float64("far", 0, "Far clip distance")
	flagOrtho  = flag.Bool("ortho", false, "Use an orthographic projection")
	flagFormat = flag.String("format", "", "Output format: text or yaml")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Zero values mean
// the flag was not given.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFOV > 0 {
		cfg.Projection.FOVDeg = float32(*flagFOV)
	}
	if *flagAspect > 0 {
		cfg.Projection.Aspect = float32(*flagAspect)
	}
	if *flagNear > 0 {
		cfg.Projection.Near = float32(*flagNear)
	}
	if *flagFar > 0 {
		cfg.Projection.Far = float32(*flagFar)
	}
	if *flagOrtho {
		cfg.Projection.Mode = ModeOrthographic
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
}
