// Package pipeline composes declarative transform pipelines into matrices.
//
// A pipeline document is YAML. Top-level steps compose into a single
// matrix; nodes form a hierarchy whose world matrices are the parent's
// world matrix times the node's local steps, optionally animated by
// rotation and scale keyframes.
//
//	name: turret
//	steps:
//	  - scale: [1, 2, 3]
//	  - rotate: {axis: [0, -1, 0], angle_deg: 45}
//	  - translate: [5, 0, -25]
//	points:
//	  - [1, 1, 1]
package pipeline

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Document is a parsed pipeline file.
type Document struct {
	Name   string       `yaml:"name"`
	Steps  []Step       `yaml:"steps"`
	Nodes  []Node       `yaml:"nodes,omitempty"`
	Points [][3]float32 `yaml:"points,omitempty"`
}

// Node is one element of a transform hierarchy.
type Node struct {
	Name      string     `yaml:"name"`
	Parent    string     `yaml:"parent,omitempty"`
	Steps     []Step     `yaml:"steps"`
	RotKeys   []RotKey   `yaml:"rot_keys,omitempty"`
	ScaleKeys []ScaleKey `yaml:"scale_keys,omitempty"`
}

// RotKey is a rotation keyframe; Quat is x, y, z, w.
type RotKey struct {
	Time float32    `yaml:"time"`
	Quat [4]float32 `yaml:"quat"`
}

// ScaleKey is a scale keyframe.
type ScaleKey struct {
	Time  float32    `yaml:"time"`
	Scale [3]float32 `yaml:"scale"`
}

// Step is a single transform. Exactly one field must be set.
type Step struct {
	Translate *[3]float32  `yaml:"translate,omitempty"`
	Scale     *[3]float32  `yaml:"scale,omitempty"`
	Rotate    *AxisAngle   `yaml:"rotate,omitempty"`
	Euler     *[3]float32  `yaml:"euler,omitempty"`
	EulerDeg  *[3]float32  `yaml:"euler_deg,omitempty"`
	Quat      *[4]float32  `yaml:"quat,omitempty"`
	Matrix    *[16]float32 `yaml:"matrix,omitempty"` // column-major
	Inverse   bool         `yaml:"inverse,omitempty"`
	Transpose bool         `yaml:"transpose,omitempty"`
}

// AxisAngle rotates about Axis by Angle radians or AngleDeg degrees;
// exactly one of the two must be set.
type AxisAngle struct {
	Axis     [3]float32 `yaml:"axis"`
	Angle    *float32   `yaml:"angle,omitempty"`
	AngleDeg *float32   `yaml:"angle_deg,omitempty"`
}

// Kinds lists the names of every field set on s.
func (s Step) Kinds() []string {
	var kinds []string
	add := func(set bool, name string) {
		if set {
			kinds = append(kinds, name)
		}
	}
	add(s.Translate != nil, "translate")
	add(s.Scale != nil, "scale")
	add(s.Rotate != nil, "rotate")
	add(s.Euler != nil, "euler")
	add(s.EulerDeg != nil, "euler_deg")
	add(s.Quat != nil, "quat")
	add(s.Matrix != nil, "matrix")
	add(s.Inverse, "inverse")
	add(s.Transpose, "transpose")
	return kinds
}

// Kind returns the step's single kind, or "" when the step is empty or
// ambiguous.
func (s Step) Kind() string {
	if k := s.Kinds(); len(k) == 1 {
		return k[0]
	}
	return ""
}

// Parse decodes and validates a pipeline document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding pipeline: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and parses a pipeline file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Validate reports every problem in the document at once.
func (d *Document) Validate() error {
	var err error
	for i, s := range d.Steps {
		err = multierr.Append(err, validateStep(fmt.Sprintf("steps[%d]", i), s))
	}

	byName := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		where := fmt.Sprintf("nodes[%d]", i)
		if n.Name == "" {
			err = multierr.Append(err, fmt.Errorf("%s: missing name", where))
			continue
		}
		if _, dup := byName[n.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate node name %q", where, n.Name))
			continue
		}
		byName[n.Name] = i
	}

	for i, n := range d.Nodes {
		where := fmt.Sprintf("nodes[%d] (%s)", i, n.Name)
		for j, s := range n.Steps {
			err = multierr.Append(err, validateStep(fmt.Sprintf("%s.steps[%d]", where, j), s))
		}
		if n.Parent != "" {
			if _, ok := byName[n.Parent]; !ok {
				err = multierr.Append(err, fmt.Errorf("%s: unknown parent %q", where, n.Parent))
			}
		}
		for j, k := range n.RotKeys {
			if k.Quat == [4]float32{} {
				err = multierr.Append(err, fmt.Errorf("%s.rot_keys[%d]: zero quaternion", where, j))
			}
			if j > 0 && k.Time < n.RotKeys[j-1].Time {
				err = multierr.Append(err, fmt.Errorf("%s.rot_keys[%d]: time %g before previous key", where, j, k.Time))
			}
		}
		for j := 1; j < len(n.ScaleKeys); j++ {
			if n.ScaleKeys[j].Time < n.ScaleKeys[j-1].Time {
				err = multierr.Append(err, fmt.Errorf("%s.scale_keys[%d]: time %g before previous key", where, j, n.ScaleKeys[j].Time))
			}
		}
	}

	return multierr.Append(err, d.checkCycles(byName))
}

func (d *Document) checkCycles(byName map[string]int) error {
	var err error
	for _, n := range d.Nodes {
		seen := map[string]bool{n.Name: true}
		for p := n.Parent; p != ""; {
			if seen[p] {
				err = multierr.Append(err, fmt.Errorf("node %q: parent chain loops through %q", n.Name, p))
				break
			}
			seen[p] = true
			idx, ok := byName[p]
			if !ok {
				break
			}
			p = d.Nodes[idx].Parent
		}
	}
	return err
}

func validateStep(where string, s Step) error {
	kinds := s.Kinds()
	switch len(kinds) {
	case 0:
		return fmt.Errorf("%s: empty step", where)
	case 1:
	default:
		return fmt.Errorf("%s: step sets %v, want exactly one", where, kinds)
	}

	switch {
	case s.Rotate != nil:
		if s.Rotate.Axis == [3]float32{} {
			return fmt.Errorf("%s: rotate axis is zero", where)
		}
		if (s.Rotate.Angle == nil) == (s.Rotate.AngleDeg == nil) {
			return fmt.Errorf("%s: rotate needs exactly one of angle, angle_deg", where)
		}
	case s.Quat != nil:
		if *s.Quat == [4]float32{} {
			return fmt.Errorf("%s: zero quaternion", where)
		}
	}
	return nil
}

// Node returns the node with the given name.
func (d *Document) Node(name string) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].Name == name {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}
