package pipeline

import "github.com/greenmatthew/velecs-math/pkg/math"

// bracket finds the keys surrounding t in a time-sorted sequence and the
// blend factor between them. prev == next when t is outside the range.
func bracket(n int, time func(int) float32, t float32) (prev, next int, frac float32) {
	for i := 0; i < n; i++ {
		if time(i) > t {
			next = i
			break
		}
		prev = i
		next = i
	}
	if prev == next {
		return prev, next, 0
	}
	if span := time(next) - time(prev); span != 0 {
		frac = (t - time(prev)) / span
	}
	return prev, next, frac
}

// SampleRotation slerps rotation keyframes at timeMs. Before the first key
// it holds the first key; after the last it holds the last.
func SampleRotation(keys []RotKey, timeMs float32) math.Quat {
	if len(keys) == 0 {
		return math.QuatIdentity()
	}
	prev, next, t := bracket(len(keys), func(i int) float32 { return keys[i].Time }, timeMs)
	q0 := quat(keys[prev].Quat)
	if prev == next {
		return q0
	}
	return q0.Slerp(quat(keys[next].Quat), t)
}

// SampleScale linearly interpolates scale keyframes at timeMs.
func SampleScale(keys []ScaleKey, timeMs float32) math.Vec3 {
	if len(keys) == 0 {
		return math.Vec3One()
	}
	prev, next, t := bracket(len(keys), func(i int) float32 { return keys[i].Time }, timeMs)
	s0 := vec3(keys[prev].Scale)
	if prev == next {
		return s0
	}
	return s0.Lerp(vec3(keys[next].Scale), t)
}

// Animated reports whether any node has more than one keyframe of a kind.
// A single key is a static pose.
func (d *Document) Animated() bool {
	for i := range d.Nodes {
		n := &d.Nodes[i]
		if len(n.RotKeys) > 1 || len(n.ScaleKeys) > 1 {
			return true
		}
	}
	return false
}
