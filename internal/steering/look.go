package steering

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up axis all headings and wander turns use.
var WorldUp = mgl32.Vec3{0, 1, 0}

// forwardAxis matches Transform.Forward: identity rotation faces -Z.
var forwardAxis = mgl32.Vec3{0, 0, -1}

const lenEpsilon = 1e-12

// LookRotation returns the model-space orientation whose forward axis
// points along dir, keeping up as close to the reference up as the
// direction allows. ok is false for degenerate input (zero-length dir,
// or dir parallel to up); callers hold their previous rotation then.
func LookRotation(dir, up mgl32.Vec3) (mgl32.Quat, bool) {
	if dir.LenSqr() < lenEpsilon {
		return mgl32.QuatIdent(), false
	}
	forward := dir.Normalize()

	right := forward.Cross(up)
	if right.LenSqr() < lenEpsilon {
		return mgl32.QuatIdent(), false
	}
	up = right.Cross(forward).Normalize()

	rotDir := mgl32.QuatBetweenVectors(forwardAxis, forward)
	upCur := rotDir.Rotate(mgl32.Vec3{0, 1, 0})
	rotUp := mgl32.QuatBetweenVectors(upCur, up)
	return rotUp.Mul(rotDir).Normalize(), true
}

// RotateTowards eases current toward goal by a fraction of the
// remaining arc, along the shorter path. Fractions at or above one
// snap to the goal.
func RotateTowards(current, goal mgl32.Quat, fraction float32) mgl32.Quat {
	if fraction <= 0 {
		return current
	}
	// Slerp takes the long way for opposed quaternion signs.
	if current.Dot(goal) < 0 {
		goal = goal.Scale(-1)
	}
	if fraction >= 1 {
		return goal.Normalize()
	}
	return mgl32.QuatSlerp(current, goal, fraction).Normalize()
}
