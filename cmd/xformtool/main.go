// xformtool is a CLI for composing and inspecting 3D transforms.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/greenmatthew/velecs-math/internal/camera"
	"github.com/greenmatthew/velecs-math/internal/config"
	"github.com/greenmatthew/velecs-math/internal/logger"
	"github.com/greenmatthew/velecs-math/internal/pipeline"
	"github.com/greenmatthew/velecs-math/pkg/math"
)

var errUsage = errors.New("bad arguments")

var stdout io.Writer = os.Stdout

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(cfg, args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
			printUsage(os.Stderr)
		} else {
			logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, command string, args []string) error {
	logger.Debug("running", zap.String("command", command), zap.Strings("args", args))

	switch command {
	case "compose", "c":
		return cmdCompose(cfg, args)
	case "project", "p":
		return cmdProject(cfg)
	case "euler", "e":
		return cmdEuler(cfg, args)
	case "point":
		return cmdPoint(cfg, args)
	case "ray", "r":
		return cmdRay(cfg, args)
	case "light", "l":
		return cmdLight(cfg, args)
	case "config":
		return cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	}
	return fmt.Errorf("unknown command %q: %w", command, errUsage)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `xformtool - 3D transform utility

Usage:
  xformtool [flags] <command> [options]

Commands:
  compose <pipeline.yaml> [x y z]   Compose a pipeline, optionally transform a point
  project                           Print the configured projection matrix
  euler <x> <y> <z>                 Quaternion and matrix for Euler angles (degrees)
  point <x> <y> <z> <w>             Show homogeneous conversions of a Vec4
  ray [opts] <sx> <sy> <w> <h>      Cast a ray through a screen pixel
      -fit <pipeline.yaml>  -drag-x/-drag-y <px>  -zoom <steps>
      -forward/-right <units>  -box <half-size>
  light <lon> <lat> <half-size>     Shadow matrix for a sun over a cube (degrees)
  config [save [path]]              Print the effective config or save it

Flags:
  --config <file>   Config file (default ./xformtool.yaml)
  --fov, --aspect, --near, --far, --ortho
                    Projection overrides
  --format text|yaml
  --debug           Debug logging

Examples:
  xformtool compose turret.yaml 1 1 1
  xformtool compose -t 500 rig.yaml
  xformtool --ortho project
  xformtool euler 90 0 45
  xformtool ray 400 300 800 600
  xformtool ray -zoom 2 -box 1 400 300 800 600
  xformtool light 130 45 50`)
}

// output prints v as YAML or calls text, depending on the configured format.
func output(cfg *config.Config, v any, text func(w io.Writer)) error {
	if cfg.Output.Format == config.FormatYAML {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return enc.Close()
	}
	text(stdout)
	return nil
}

type composeResult struct {
	Name        string               `yaml:"name,omitempty"`
	Matrix      math.Mat4            `yaml:"matrix"`
	UnitBounds  camera.AABB          `yaml:"unit_cube_bounds"`
	Animated    bool                 `yaml:"animated"`
	Point       *transformedPoint    `yaml:"point,omitempty"`
	Points      []math.Vec3          `yaml:"points,omitempty"`
	WorldMatrix map[string]math.Mat4 `yaml:"world_matrices,omitempty"`
}

type transformedPoint struct {
	In   math.Vec3 `yaml:"in"`
	Clip math.Vec4 `yaml:"homogeneous"`
	Out  math.Vec3 `yaml:"out"`
}

func cmdCompose(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("compose", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	timeMs := fs.Float64("t", 0, "Animation time in milliseconds for node matrices")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("compose: %v: %w", err, errUsage)
	}
	if fs.NArg() != 1 && fs.NArg() != 4 {
		return fmt.Errorf("compose <pipeline.yaml> [x y z]: %w", errUsage)
	}

	doc, err := pipeline.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	m, err := doc.Matrix()
	if err != nil {
		return err
	}
	res := composeResult{
		Name:       doc.Name,
		Matrix:     m,
		UnitBounds: camera.NewAABB(math.Vec3NegOne(), math.Vec3One()).Transform(m),
		Animated:   doc.Animated(),
	}

	if fs.NArg() == 4 {
		xyz, err := parseFloats(fs.Args()[1:])
		if err != nil {
			return err
		}
		in := math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		clip := m.MulVec4(math.CreatePoint(in.X, in.Y, in.Z))
		out, err := clip.ToVec3()
		if err != nil {
			return fmt.Errorf("transforming %v: %w", in, err)
		}
		res.Point = &transformedPoint{In: in, Clip: clip, Out: out}
	}

	if res.Points, err = doc.TransformPoints(); err != nil {
		return err
	}

	if len(doc.Nodes) > 0 {
		res.WorldMatrix = make(map[string]math.Mat4, len(doc.Nodes))
		for _, n := range doc.Nodes {
			w, err := doc.WorldMatrix(n.Name, float32(*timeMs))
			if err != nil {
				return err
			}
			res.WorldMatrix[n.Name] = w
		}
	}

	return output(cfg, res, func(w io.Writer) {
		if res.Name != "" {
			fmt.Fprintf(w, "Pipeline: %s\n", res.Name)
		}
		fmt.Fprint(w, res.Matrix)
		fmt.Fprintf(w, "Unit cube: %v .. %v\n", res.UnitBounds.Min, res.UnitBounds.Max)
		if res.Animated {
			fmt.Fprintln(w, "Animated:  yes")
		}
		if p := res.Point; p != nil {
			fmt.Fprintf(w, "\n%v -> %v -> %v\n", p.In, p.Clip, p.Out)
		}
		for i, p := range res.Points {
			fmt.Fprintf(w, "point[%d] %v\n", i, p)
		}
		for _, n := range doc.Nodes {
			fmt.Fprintf(w, "\nNode %s (t=%gms):\n%v", n.Name, *timeMs, res.WorldMatrix[n.Name])
		}
	})
}

type projectResult struct {
	Mode   string    `yaml:"mode"`
	Matrix math.Mat4 `yaml:"matrix"`
}

func cmdProject(cfg *config.Config) error {
	p := cfg.Projection
	res := projectResult{Mode: p.Mode, Matrix: camera.ProjectionMatrix(p)}

	return output(cfg, res, func(w io.Writer) {
		if p.Mode == config.ModeOrthographic {
			fmt.Fprintf(w, "Orthographic %gx%g, near %g, far %g\n", p.Width, p.Height, p.Near, p.Far)
		} else {
			fmt.Fprintf(w, "Perspective fov %g, aspect %g, near %g, far %g\n", p.FOVDeg, p.Aspect, p.Near, p.Far)
		}
		fmt.Fprint(w, res.Matrix)
	})
}

type eulerResult struct {
	Quat      [4]float32 `yaml:"quat"` // x, y, z, w
	Matrix    math.Mat4  `yaml:"matrix"`
	RoundTrip math.Vec3  `yaml:"euler_deg"`
}

func cmdEuler(cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("euler <x> <y> <z>: %w", errUsage)
	}
	deg, err := parseFloats(args)
	if err != nil {
		return err
	}

	q := math.QuatFromEulerAnglesDeg(deg[0], deg[1], deg[2])
	res := eulerResult{
		Quat:      [4]float32{q.X(), q.Y(), q.Z(), q.W()},
		Matrix:    q.ToMatrix(),
		RoundTrip: q.ToEulerAnglesDeg(),
	}

	return output(cfg, res, func(w io.Writer) {
		fmt.Fprintf(w, "Quat:  %v\n", q)
		fmt.Fprintf(w, "Euler: %v\n", res.RoundTrip)
		fmt.Fprint(w, res.Matrix)
	})
}

type pointResult struct {
	XYZ       math.Vec3  `yaml:"xyz"`
	Vec3      *math.Vec3 `yaml:"to_vec3,omitempty"`
	Vec3Error string     `yaml:"to_vec3_error,omitempty"`
	Point     math.Vec4  `yaml:"to_point"`
	Direction math.Vec4  `yaml:"to_direction"`
}

func cmdPoint(cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("point <x> <y> <z> <w>: %w", errUsage)
	}
	c, err := parseFloats(args)
	if err != nil {
		return err
	}

	v := math.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
	res := pointResult{XYZ: v.XYZ(), Point: v.ToPoint(), Direction: v.ToDirection()}
	v3, convErr := v.ToVec3()
	if convErr != nil {
		res.Vec3Error = convErr.Error()
	} else {
		res.Vec3 = &v3
	}

	return output(cfg, res, func(w io.Writer) {
		fmt.Fprintf(w, "XYZ:         %v\n", res.XYZ)
		if convErr != nil {
			fmt.Fprintf(w, "ToVec3:      %v\n", convErr)
		} else {
			fmt.Fprintf(w, "ToVec3:      %v\n", v3)
		}
		fmt.Fprintf(w, "ToPoint:     %v\n", res.Point)
		fmt.Fprintf(w, "ToDirection: %v\n", res.Direction)
	})
}

type rayResult struct {
	Camera    math.Vec3  `yaml:"camera"`
	Target    math.Vec3  `yaml:"target"`
	Origin    math.Vec3  `yaml:"origin"`
	Direction math.Vec3  `yaml:"direction"`
	Ground    *math.Vec3 `yaml:"ground,omitempty"`
	BoxHit    *float32   `yaml:"box_hit,omitempty"`
}

func cmdRay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ray", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fit := fs.String("fit", "", "Frame the points of a pipeline file first")
	dragX := fs.Float64("drag-x", 0, "Horizontal mouse drag in pixels")
	dragY := fs.Float64("drag-y", 0, "Vertical mouse drag in pixels")
	zoom := fs.Float64("zoom", 0, "Scroll wheel steps (positive zooms in)")
	forward := fs.Float64("forward", 0, "Pan the target forward")
	right := fs.Float64("right", 0, "Pan the target right")
	box := fs.Float64("box", 0, "Half-size of a cube around the target to intersect")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("ray: %v: %w", err, errUsage)
	}
	if fs.NArg() != 4 {
		return fmt.Errorf("ray <sx> <sy> <width> <height>: %w", errUsage)
	}
	v, err := parseFloats(fs.Args())
	if err != nil {
		return err
	}

	cam := camera.FromConfig(cfg.Camera)
	if *fit != "" {
		doc, err := pipeline.LoadFile(*fit)
		if err != nil {
			return err
		}
		pts, err := doc.TransformPoints()
		if err != nil {
			return err
		}
		if len(pts) == 0 {
			return fmt.Errorf("%s has no points to fit", *fit)
		}
		cam.FitToBounds(camera.BoundsOf(pts...))
	}
	cam.HandleDrag(float32(*dragX), float32(*dragY))
	cam.HandleZoom(float32(*zoom))
	cam.HandleMovement(float32(*forward), float32(*right), 0)

	r, err := cam.ScreenToRay(v[0], v[1], v[2], v[3], cfg.Projection)
	if err != nil {
		return err
	}
	res := rayResult{Camera: cam.Position(), Target: cam.Target, Origin: r.Origin, Direction: r.Direction}
	if hit, ok := r.IntersectPlaneY(0); ok {
		res.Ground = &hit
	}
	if *box > 0 {
		half := math.Vec3One().Scale(float32(*box))
		if t, ok := r.IntersectAABB(camera.NewAABB(cam.Target.Sub(half), cam.Target.Add(half))); ok {
			res.BoxHit = &t
		}
	}

	return output(cfg, res, func(w io.Writer) {
		fmt.Fprintf(w, "Camera:    %v -> %v\n", res.Camera, res.Target)
		fmt.Fprintf(w, "Origin:    %v\n", res.Origin)
		fmt.Fprintf(w, "Direction: %v\n", res.Direction)
		if res.Ground != nil {
			fmt.Fprintf(w, "Ground:    %v\n", *res.Ground)
		} else {
			fmt.Fprintln(w, "Ground:    miss")
		}
		if res.BoxHit != nil {
			fmt.Fprintf(w, "Box:       hit at %g\n", *res.BoxHit)
		}
	})
}

// cmdConfig prints the effective config, or saves it with "save [path]".
func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = stdout.Write(data)
		return err
	}
	if args[0] != "save" || len(args) > 2 {
		return fmt.Errorf("config [save [path]]: %w", errUsage)
	}

	path := config.DefaultPath()
	save := cfg.Save
	if len(args) == 2 {
		path = args[1]
		save = func() error { return cfg.SaveTo(path) }
	}
	if err := save(); err != nil {
		return err
	}
	logger.Info("config saved", zap.String("path", path))
	fmt.Fprintf(stdout, "Saved %s\n", path)
	return nil
}

type lightResult struct {
	Direction math.Vec3 `yaml:"direction"`
	Matrix    math.Mat4 `yaml:"matrix"`
}

func cmdLight(cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("light <lon> <lat> <half-size>: %w", errUsage)
	}
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if v[2] <= 0 {
		return fmt.Errorf("half-size %g must be positive: %w", v[2], errUsage)
	}

	half := math.Vec3One().Scale(v[2])
	bounds := camera.NewAABB(half.Neg(), half)
	dir := camera.SunDirection(v[0], v[1])
	res := lightResult{Direction: dir, Matrix: camera.DirectionalLightMatrix(dir, bounds)}

	return output(cfg, res, func(w io.Writer) {
		fmt.Fprintf(w, "Sun: %v\n", res.Direction)
		fmt.Fprint(w, res.Matrix)
	})
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %v: %w", i+1, a, err, errUsage)
		}
		out[i] = float32(f)
	}
	return out, nil
}
