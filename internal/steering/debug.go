package steering

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Line is a single debug segment in world space
type Line struct {
	From  mgl32.Vec3
	To    mgl32.Vec3
	Color mgl32.Vec3
}

// Sink receives the debug lines an agent emits each tick.
// Implementations must be cheap; they run inside the update loop.
type Sink interface {
	Lines(segments []Line)
}

// NopSink discards all lines
type NopSink struct{}

func (NopSink) Lines([]Line) {}

var (
	rayClearColor = mgl32.Vec3{0.2, 0.9, 0.2}
	rayHitColor   = mgl32.Vec3{0.9, 0.2, 0.2}
	goalLineColor = mgl32.Vec3{0.9, 0.9, 0.2}
)
