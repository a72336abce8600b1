package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/greenmatthew/velecs-math/internal/logger"
	"github.com/greenmatthew/velecs-math/pkg/math"
)

// Apply composes s onto m. Every step right-multiplies, so the last step
// listed is the first applied to a point. An invalid step leaves m
// unchanged and returns the validation error.
func (s Step) Apply(m math.Mat4) (math.Mat4, error) {
	if err := validateStep("step", s); err != nil {
		return m, err
	}

	switch s.Kind() {
	case "translate":
		return m.WithTranslation(vec3(*s.Translate)), nil
	case "scale":
		return m.WithScale(vec3(*s.Scale)), nil
	case "rotate":
		axis := vec3(s.Rotate.Axis)
		if s.Rotate.AngleDeg != nil {
			return m.WithRotationDeg(*s.Rotate.AngleDeg, axis), nil
		}
		return m.WithRotation(*s.Rotate.Angle, axis), nil
	case "euler":
		return m.WithRotationEuler(vec3(*s.Euler)), nil
	case "euler_deg":
		return m.WithRotationEulerDeg(vec3(*s.EulerDeg)), nil
	case "quat":
		return m.WithRotationQuat(quat(*s.Quat)), nil
	case "matrix":
		return m.Mul(math.Mat4(*s.Matrix)), nil
	case "inverse":
		return m.InverseChecked()
	case "transpose":
		return m.WithTranspose(), nil
	}
	return m, fmt.Errorf("step sets %v, want exactly one", s.Kinds())
}

// Compose folds steps left to right starting from the identity.
func Compose(steps []Step) (math.Mat4, error) {
	log := logger.Named("pipeline")
	m := math.Identity()
	for i, s := range steps {
		next, err := s.Apply(m)
		if err != nil {
			return math.Mat4{}, fmt.Errorf("step %d (%s): %w", i, s.Kind(), err)
		}
		m = next
		log.Debug("composed step", zap.Int("index", i), zap.String("kind", s.Kind()))
	}
	return m, nil
}

// Matrix composes the document's top-level steps.
func (d *Document) Matrix() (math.Mat4, error) {
	return Compose(d.Steps)
}

// TransformPoint maps p through m as a homogeneous point and divides by
// the resulting w. A projective m that sends p to infinity (w = 0)
// returns math.ErrDivideByZero.
func TransformPoint(m math.Mat4, p math.Vec3) (math.Vec3, error) {
	return m.MulVec4(math.CreatePointVec(p)).ToVec3()
}

// TransformPoints applies the document matrix to every listed point.
func (d *Document) TransformPoints() ([]math.Vec3, error) {
	m, err := d.Matrix()
	if err != nil {
		return nil, err
	}
	out := make([]math.Vec3, len(d.Points))
	for i, p := range d.Points {
		out[i], err = TransformPoint(m, vec3(p))
		if err != nil {
			return nil, fmt.Errorf("point %d %v: %w", i, p, err)
		}
	}
	return out, nil
}

// LocalMatrix returns the node's own transform at timeMs: its steps, then
// the sampled rotation keyframes, then the sampled scale keyframes.
func (n *Node) LocalMatrix(timeMs float32) (math.Mat4, error) {
	m, err := Compose(n.Steps)
	if err != nil {
		return math.Mat4{}, fmt.Errorf("node %q: %w", n.Name, err)
	}
	if len(n.RotKeys) > 0 {
		m = m.WithRotationQuat(SampleRotation(n.RotKeys, timeMs))
	}
	if len(n.ScaleKeys) > 0 {
		m = m.WithScale(SampleScale(n.ScaleKeys, timeMs))
	}
	return m, nil
}

// WorldMatrix returns parent world * local for the named node at timeMs.
func (d *Document) WorldMatrix(name string, timeMs float32) (math.Mat4, error) {
	return d.worldMatrix(name, timeMs, make(map[string]bool))
}

func (d *Document) worldMatrix(name string, timeMs float32, visited map[string]bool) (math.Mat4, error) {
	if visited[name] {
		return math.Mat4{}, fmt.Errorf("node %q: parent cycle", name)
	}
	visited[name] = true

	n, ok := d.Node(name)
	if !ok {
		return math.Mat4{}, fmt.Errorf("unknown node %q", name)
	}
	local, err := n.LocalMatrix(timeMs)
	if err != nil {
		return math.Mat4{}, err
	}
	if n.Parent == "" {
		return local, nil
	}
	parent, err := d.worldMatrix(n.Parent, timeMs, visited)
	if err != nil {
		return math.Mat4{}, err
	}
	return parent.Mul(local), nil
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func quat(a [4]float32) math.Quat {
	return math.NewQuat(a[0], a[1], a[2], a[3]).Normalize()
}
