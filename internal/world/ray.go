package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, sphereCenter mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	// Calculate vector from ray origin to sphere center
	oc := ray.Origin.Sub(sphereCenter)

	// Calculate coefficients for quadratic equation
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	// Calculate discriminant
	discriminant := b*b - 4*a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}

	// Calculate intersection distance
	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Return the closest intersection (smallest positive t)
	var t float32
	if t1 > 0 && t2 > 0 {
		if t1 < t2 {
			t = t1
		} else {
			t = t2
		}
	} else if t1 > 0 {
		t = t1
	} else if t2 > 0 {
		t = t2
	} else {
		// Both intersections are behind the ray origin
		return false, 0, mgl32.Vec3{}
	}

	// Calculate intersection point
	intersectionPoint := ray.Origin.Add(ray.Direction.Mul(t))

	return true, t, intersectionPoint
}

// RayIntersectTriangle tests if a ray intersects a triangle
// Returns: (intersected, distance, intersection point)
// Uses Möller-Trumbore algorithm
func RayIntersectTriangle(ray Ray, v0, v1, v2 mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	const epsilon = 0.0000001

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return false, 0, mgl32.Vec3{} // Ray is parallel to triangle
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return false, 0, mgl32.Vec3{}
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return false, 0, mgl32.Vec3{}
	}

	// Calculate t to find intersection point
	t := f * edge2.Dot(q)

	if t > epsilon {
		// Intersection found
		intersectionPoint := ray.Origin.Add(ray.Direction.Mul(t))
		return true, t, intersectionPoint
	}

	return false, 0, mgl32.Vec3{} // Line intersection but not ray intersection
}

// RayExitBox finds where a ray cast from inside an axis-aligned box
// crosses its boundary
// Returns: (exited, distance, exit point, inward face normal)
func RayExitBox(ray Ray, boxMin, boxMax mgl32.Vec3) (bool, float32, mgl32.Vec3, mgl32.Vec3) {
	const epsilon = 0.0000001

	exit := float32(math.MaxFloat32)
	axis := -1
	for i := 0; i < 3; i++ {
		d := ray.Direction[i]
		if d > -epsilon && d < epsilon {
			continue // Ray is parallel to this slab
		}
		t1 := (boxMin[i] - ray.Origin[i]) / d
		t2 := (boxMax[i] - ray.Origin[i]) / d
		far := t1
		if t2 > far {
			far = t2
		}
		if far < exit {
			exit = far
			axis = i
		}
	}

	if axis < 0 || exit <= 0 {
		return false, 0, mgl32.Vec3{}, mgl32.Vec3{}
	}

	exitPoint := ray.Origin.Add(ray.Direction.Mul(exit))

	// The inward normal opposes the ray on the crossed axis
	var normal mgl32.Vec3
	if ray.Direction[axis] > 0 {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}

	return true, exit, exitPoint, normal
}
