package world

import (
	"fmt"

	"Fishtank3D/internal/steering"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a round obstacle inside the tank: a rock, an ornament, a
// bubbler head.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Panel is a thin rectangular obstacle such as a glass divider,
// given by its four corners in winding order.
type Panel struct {
	Corners [4]mgl32.Vec3
}

// Tank is the static collision world agents probe against: the inside
// of an axis-aligned glass box plus the obstacles placed in it.
// Implements the steering probe; all hit normals face the ray origin.
type Tank struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3 // full extents per axis

	spheres []Sphere
	panels  []Panel
}

// NewTank builds an empty tank. Size components are full extents and
// must all be positive.
func NewTank(center, size mgl32.Vec3) (*Tank, error) {
	for i := 0; i < 3; i++ {
		if size[i] <= 0 {
			return nil, fmt.Errorf("tank size must be positive on every axis, got %v", size)
		}
	}
	return &Tank{Center: center, Size: size}, nil
}

// AddSphere places a round obstacle. The radius must be positive.
func (t *Tank) AddSphere(s Sphere) error {
	if s.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %v", s.Radius)
	}
	t.spheres = append(t.spheres, s)
	return nil
}

// AddPanel places a thin rectangular obstacle.
func (t *Tank) AddPanel(p Panel) {
	t.panels = append(t.panels, p)
}

// Min returns the lowest corner of the tank box.
func (t *Tank) Min() mgl32.Vec3 {
	return t.Center.Sub(t.Size.Mul(0.5))
}

// Max returns the highest corner of the tank box.
func (t *Tank) Max() mgl32.Vec3 {
	return t.Center.Add(t.Size.Mul(0.5))
}

// Contains reports whether a point lies inside the tank box.
func (t *Tank) Contains(p mgl32.Vec3) bool {
	min, max := t.Min(), t.Max()
	for i := 0; i < 3; i++ {
		if p[i] < min[i] || p[i] > max[i] {
			return false
		}
	}
	return true
}

// ClampInside moves a point to the nearest position at least margin
// away from every wall. Margins beyond the half extent collapse to
// the center plane.
func (t *Tank) ClampInside(p mgl32.Vec3, margin float32) mgl32.Vec3 {
	min, max := t.Min(), t.Max()
	for i := 0; i < 3; i++ {
		lo, hi := min[i]+margin, max[i]-margin
		if lo > hi {
			lo = (min[i] + max[i]) / 2
			hi = lo
		}
		p[i] = mgl32.Clamp(p[i], lo, hi)
	}
	return p
}

// Cast finds the nearest surface along dir within maxDist: tank walls
// from the inside, obstacle spheres and panels from the outside.
// Returns false for zero directions or when nothing is in range.
func (t *Tank) Cast(origin, dir mgl32.Vec3, maxDist float32) (steering.Hit, bool) {
	if maxDist <= 0 || dir.LenSqr() == 0 {
		return steering.Hit{}, false
	}
	ray := Ray{Origin: origin, Direction: dir.Normalize()}

	best := steering.Hit{Distance: maxDist}
	found := false

	if ok, dist, point, normal := RayExitBox(ray, t.Min(), t.Max()); ok && dist <= best.Distance {
		best = steering.Hit{Point: point, Normal: normal, Distance: dist}
		found = true
	}

	for _, s := range t.spheres {
		ok, dist, point := RayIntersectSphere(ray, s.Center, s.Radius)
		if !ok || dist > best.Distance {
			continue
		}
		normal := point.Sub(s.Center).Normalize()
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Mul(-1) // hit from inside the sphere
		}
		best = steering.Hit{Point: point, Normal: normal, Distance: dist}
		found = true
	}

	for _, p := range t.panels {
		ok, dist, point, normal := rayIntersectPanel(ray, p)
		if !ok || dist > best.Distance {
			continue
		}
		best = steering.Hit{Point: point, Normal: normal, Distance: dist}
		found = true
	}

	if !found {
		return steering.Hit{}, false
	}
	return best, true
}

// rayIntersectPanel tests the two triangles of a quad
// Returns: (intersected, distance, intersection point, normal facing the ray)
func rayIntersectPanel(ray Ray, p Panel) (bool, float32, mgl32.Vec3, mgl32.Vec3) {
	ok, dist, point := RayIntersectTriangle(ray, p.Corners[0], p.Corners[1], p.Corners[2])
	if !ok {
		ok, dist, point = RayIntersectTriangle(ray, p.Corners[0], p.Corners[2], p.Corners[3])
		if !ok {
			return false, 0, mgl32.Vec3{}, mgl32.Vec3{}
		}
	}

	edge1 := p.Corners[1].Sub(p.Corners[0])
	edge2 := p.Corners[2].Sub(p.Corners[0])
	normal := edge1.Cross(edge2)
	if normal.LenSqr() == 0 {
		return false, 0, mgl32.Vec3{}, mgl32.Vec3{}
	}
	normal = normal.Normalize()
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Mul(-1)
	}

	return true, dist, point, normal
}
