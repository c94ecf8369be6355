package steering

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FaceTarget turns current toward facing target from position,
// covering elapsed/followSpeed of the remaining arc this tick.
// followSpeed is a catch-up time constant in seconds, not a rate;
// smaller values track faster, and values at or below zero snap.
// When target coincides with position the previous rotation is kept.
func FaceTarget(current mgl32.Quat, position, target mgl32.Vec3, elapsed, followSpeed float32) mgl32.Quat {
	goal, ok := LookRotation(target.Sub(position), WorldUp)
	if !ok {
		return current
	}
	if followSpeed <= 0 {
		return goal
	}
	return RotateTowards(current, goal, elapsed/followSpeed)
}
