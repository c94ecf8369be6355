package scripts

import (
	"Fishtank3D/internal/behaviour"
	"github.com/go-gl/mathgl/mgl32"
	"math"
)

// OrbitScript circles its object around a fixed point. Used for demo
// props and as a moving target for the camera tracker.
type OrbitScript struct {
	behaviour.BaseComponent
	Center mgl32.Vec3
	Radius float32
	Speed  float32
	time   float32
}

func init() {
	behaviour.RegisterScript("OrbitScript", func() behaviour.Component {
		return &OrbitScript{Radius: 10.0, Speed: 1.0}
	})
	println("Registered OrbitScript")
}

func (o *OrbitScript) Start() {}

func (o *OrbitScript) Update(deltaTime float32) {
	o.time += deltaTime * o.Speed

	x := float32(math.Cos(float64(o.time))) * o.Radius
	z := float32(math.Sin(float64(o.time))) * o.Radius

	o.GetGameObject().Transform.Position[0] = o.Center.X() + x
	o.GetGameObject().Transform.Position[2] = o.Center.Z() + z
}

func (o *OrbitScript) FixedUpdate(step float32) {}
