package steering

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Params configures one agent. Immutable after construction; the agent
// keeps its own copy.
type Params struct {
	SensingDistance   float32    // forward probe reach, world units
	SwimSpeedMin      float32    // units per second
	SwimSpeedMax      float32    // units per second
	MaxTurnRate       float32    // fraction of remaining arc per second at full danger
	MaxWanderAngle    float32    // radians, half-width of a wander turn
	WanderPeriod      float32    // seconds between wander decisions
	WanderProbability float32    // chance a decision picks a new heading
	TankCenter        mgl32.Vec3 // shared escape reference point
	Seed              int64      // drives noise and wander rolls
}

// Validate reports the first configuration problem found. Agents with
// invalid params must not run.
func (p Params) Validate() error {
	if p.SensingDistance <= 0 {
		return fmt.Errorf("sensing distance must be positive, got %v", p.SensingDistance)
	}
	if p.SwimSpeedMin < 0 {
		return fmt.Errorf("minimum swim speed must not be negative, got %v", p.SwimSpeedMin)
	}
	if p.SwimSpeedMax <= 0 {
		return fmt.Errorf("maximum swim speed must be positive, got %v", p.SwimSpeedMax)
	}
	if p.SwimSpeedMin > p.SwimSpeedMax {
		return fmt.Errorf("swim speed range inverted: min %v > max %v", p.SwimSpeedMin, p.SwimSpeedMax)
	}
	if p.MaxTurnRate <= 0 {
		return fmt.Errorf("max turn rate must be positive, got %v", p.MaxTurnRate)
	}
	if p.MaxWanderAngle < 0 {
		return fmt.Errorf("max wander angle must not be negative, got %v", p.MaxWanderAngle)
	}
	if p.WanderPeriod <= 0 {
		return fmt.Errorf("wander period must be positive, got %v", p.WanderPeriod)
	}
	if p.WanderProbability < 0 || p.WanderProbability > 1 {
		return fmt.Errorf("wander probability must be in [0,1], got %v", p.WanderProbability)
	}
	return nil
}
