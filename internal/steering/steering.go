package steering

import (
	"errors"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit describes the nearest surface struck by a probe ray
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Probe answers forward-looking distance queries against the world.
// Cast returns the nearest hit within maxDist, if any.
type Probe interface {
	Cast(origin, dir mgl32.Vec3, maxDist float32) (Hit, bool)
}

// Pose is an agent's spatial state
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

const (
	// Wander heading eases at this fraction of the remaining arc per
	// second. Fixed on purpose; only avoidance urgency is tunable.
	wanderSmoothing = 2.0

	// A reflected escape point is pushed at least this far from the
	// hit so grazing contacts still produce a usable goal.
	minReflectOffset = 1.0

	// Danger never fully vanishes inside sensing range.
	minDanger = 0.01

	// Tail oscillation. Amplitude in radians; speed rises by one
	// rad/s from tailSpeedMin as the agent approaches full speed.
	tailAmplitude = 0.3
	tailSpeedMin  = 3.0

	// Time scale feeding the speed noise.
	noiseTimeScale = 0.5

	// Spread of the per-agent phase offset desynchronizing schools.
	phaseSpread = 100.0
)

// Agent drives one fish: noise-driven speed, timer-gated wander turns
// and raycast obstacle avoidance, integrated into its pose each tick.
type Agent struct {
	params Params
	probe  Probe
	noise  Noise
	rng    *rand.Rand

	pose        Pose
	speed       float32
	goal        mgl32.Quat // orientation the heading eases toward
	wanderStart float64    // wander period start timestamp
	ticked      bool
	obstacle    bool
	danger      float32
	hitPoint    mgl32.Vec3
	goalPoint   mgl32.Vec3
	phase       float64 // per-agent noise offset, fixed at creation
	wiggle      float32 // current tail angle, radians
}

// NewAgent builds an agent from validated params and a spatial probe.
// The probe is required; an agent cannot steer blind.
func NewAgent(params Params, probe Probe) (*Agent, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if probe == nil {
		return nil, errors.New("steering agent needs a spatial probe")
	}
	rng := rand.New(rand.NewSource(params.Seed))
	a := &Agent{
		params: params,
		probe:  probe,
		noise:  NewPerlinNoise(params.Seed),
		rng:    rng,
		phase:  rng.Float64() * phaseSpread,
		speed:  params.SwimSpeedMin,
		pose: Pose{
			Rotation: mgl32.QuatIdent(),
		},
	}
	a.goal = a.pose.Rotation
	return a, nil
}

// Pose returns the agent's current position and orientation.
func (a *Agent) Pose() Pose {
	return a.pose
}

// SetPose places the agent. Typically called once at spawn.
func (a *Agent) SetPose(p Pose) {
	a.pose = p
	a.goal = p.Rotation
}

// Forward returns the agent's current facing direction.
func (a *Agent) Forward() mgl32.Vec3 {
	return a.pose.Rotation.Rotate(forwardAxis)
}

// Speed returns the current swim speed in units per second.
func (a *Agent) Speed() float32 {
	return a.speed
}

// Wiggle returns the current tail angle in radians. Cosmetic only.
func (a *Agent) Wiggle() float32 {
	return a.wiggle
}

// Avoiding reports whether the last tick sensed an obstacle ahead.
func (a *Agent) Avoiding() bool {
	return a.obstacle
}

// Params returns the agent's configuration copy.
func (a *Agent) Params() Params {
	return a.params
}

// Step advances the agent by one tick. now is absolute simulation time
// in seconds, dt the elapsed time since the previous tick. The probe
// runs first so every later layer sees this tick's obstacle state.
// Returns the tick's debug lines: the sensing ray, colored by whether
// it hit, and the escape line from hit point to goal point.
func (a *Agent) Step(now float64, dt float32) []Line {
	if dt <= 0 {
		return nil
	}
	if !a.ticked {
		a.ticked = true
		a.wanderStart = now
	}

	lines := a.sense()
	a.updateWiggle(now)
	a.updateWander(now, dt)
	a.updateAvoidance(dt)
	a.integrate(dt)
	return lines
}

// sense casts the forward ray and, on a hit, derives the escape goal:
// the incoming direction reflected about the surface normal, pushed
// out past the hit, then pulled halfway toward the tank center.
func (a *Agent) sense() []Line {
	forward := a.Forward()
	hit, ok := a.probe.Cast(a.pose.Position, forward, a.params.SensingDistance)
	a.obstacle = ok
	if !ok {
		end := a.pose.Position.Add(forward.Mul(a.params.SensingDistance))
		return []Line{{From: a.pose.Position, To: end, Color: rayClearColor}}
	}

	a.hitPoint = hit.Point
	a.danger = dangerScalar(hit.Distance, a.params.SensingDistance)

	offset := hit.Distance
	if offset < minReflectOffset {
		offset = minReflectOffset
	}
	escape := hit.Point.Add(reflect(forward, hit.Normal).Mul(offset))
	a.goalPoint = escape.Add(a.params.TankCenter).Mul(0.5)

	return []Line{
		{From: a.pose.Position, To: hit.Point, Color: rayHitColor},
		{From: hit.Point, To: a.goalPoint, Color: goalLineColor},
	}
}

func (a *Agent) updateWiggle(now float64) {
	tailSpeed := tailSpeedMin + a.speed/a.params.SwimSpeedMax
	a.wiggle = float32(math.Sin(now*float64(tailSpeed))) * tailAmplitude
}

// updateWander drifts the speed with smooth noise every tick and, when
// no obstacle is ahead, turns toward the wander goal. New goals are
// rolled at most once per wander period.
func (a *Agent) updateWander(now float64, dt float32) {
	n := (a.noise.Noise1D(now*noiseTimeScale+a.phase) + 1) * 0.5
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	n *= n // bias toward slow cruising
	a.speed = a.params.SwimSpeedMin + float32(n)*(a.params.SwimSpeedMax-a.params.SwimSpeedMin)

	if a.obstacle {
		// Avoidance owns the heading this tick.
		return
	}

	if now-a.wanderStart >= float64(a.params.WanderPeriod) {
		a.wanderStart = now
		if a.rng.Float32() < a.params.WanderProbability {
			angle := (a.rng.Float32()*2 - 1) * a.params.MaxWanderAngle
			turn := mgl32.QuatRotate(angle, WorldUp)
			a.goal = turn.Mul(a.pose.Rotation).Normalize()
		}
	}

	a.pose.Rotation = RotateTowards(a.pose.Rotation, a.goal, wanderSmoothing*dt)
}

// updateAvoidance turns toward the escape goal with urgency scaled by
// proximity. Far hits barely perturb the heading; near contact turns
// at the full configured rate.
func (a *Agent) updateAvoidance(dt float32) {
	if !a.obstacle {
		return
	}

	goalRot, ok := LookRotation(a.goalPoint.Sub(a.pose.Position), WorldUp)
	if !ok {
		// Goal sits on the agent; hold the current heading.
		return
	}
	a.goal = goalRot
	a.pose.Rotation = RotateTowards(a.pose.Rotation, goalRot, a.params.MaxTurnRate*a.danger*dt)
}

// integrate advances the position along the post-rotation forward.
func (a *Agent) integrate(dt float32) {
	a.pose.Position = a.pose.Position.Add(a.Forward().Mul(a.speed * dt))
}

// dangerScalar maps hit proximity to turn urgency with quartic
// falloff: near zero at sensing range, one at contact, floored at
// minDanger.
func dangerScalar(hitDist, sensing float32) float32 {
	t := 1 - hitDist/sensing
	d := t * t * t * t
	if d < minDanger {
		d = minDanger
	}
	return d
}

// reflect mirrors v about a surface normal
func reflect(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
