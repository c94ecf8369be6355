package scripts

import (
	"Fishtank3D/internal/behaviour"
	"Fishtank3D/internal/logger"
	"Fishtank3D/internal/steering"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// FishBehaviour hosts a steering agent on a GameObject. The agent owns
// the body pose; every tick the component steps it and writes the result
// back to the Transform. A child transform carries the tail wiggle.
type FishBehaviour struct {
	behaviour.BaseComponent
	agent *steering.Agent
	sink  steering.Sink
	tail  *behaviour.Transform
	now   float64
}

func init() {
	behaviour.RegisterScript("FishBehaviour", func() behaviour.Component {
		return &FishBehaviour{}
	})
	println("Registered FishBehaviour")
}

// NewFishBehaviour builds a fish component around a configured steering
// agent. The probe is the collision world the fish senses against.
func NewFishBehaviour(params steering.Params, probe steering.Probe) (*FishBehaviour, error) {
	agent, err := steering.NewAgent(params, probe)
	if err != nil {
		return nil, err
	}
	return &FishBehaviour{agent: agent, sink: steering.NopSink{}}, nil
}

// SetDebugSink replaces the destination for steering debug lines.
func (f *FishBehaviour) SetDebugSink(sink steering.Sink) {
	if sink == nil {
		sink = steering.NopSink{}
	}
	f.sink = sink
}

// Agent exposes the steering state for stats and tests.
func (f *FishBehaviour) Agent() *steering.Agent {
	return f.agent
}

// Tail returns the child transform carrying the wiggle rotation.
func (f *FishBehaviour) Tail() *behaviour.Transform {
	return f.tail
}

func (f *FishBehaviour) Start() {
	if f.agent == nil {
		logger.Init()
		name := ""
		if obj := f.GetGameObject(); obj != nil {
			name = obj.Name
		}
		logger.Log.Warn("FishBehaviour has no steering agent, disabling", zap.String("object", name))
		f.SetEnabled(false)
		return
	}

	t := f.GetGameObject().Transform
	f.agent.SetPose(steering.Pose{Position: t.Position, Rotation: t.Rotation})

	// Forward is -Z, so the tail trails behind on +Z.
	f.tail = &behaviour.Transform{
		Position: mgl32.Vec3{0, 0, 0.5},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	t.AddChild(f.tail)
}

func (f *FishBehaviour) Update(deltaTime float32) {
	if f.agent == nil {
		return
	}
	f.now += float64(deltaTime)

	lines := f.agent.Step(f.now, deltaTime)

	pose := f.agent.Pose()
	t := f.GetGameObject().Transform
	t.Position = pose.Position
	t.Rotation = pose.Rotation
	f.tail.Rotation = mgl32.QuatRotate(f.agent.Wiggle(), steering.WorldUp)

	if len(lines) > 0 {
		f.sink.Lines(lines)
	}
}

func (f *FishBehaviour) FixedUpdate(step float32) {}
