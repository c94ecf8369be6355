package scripts

import (
	"Fishtank3D/internal/behaviour"
	"Fishtank3D/internal/logger"
	"Fishtank3D/internal/steering"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

// CameraTracker turns the owning object to face a target transform.
// FollowSpeed is the easing time in seconds; smaller values track
// tighter, zero snaps immediately.
type CameraTracker struct {
	behaviour.BaseComponent
	Target      *behaviour.Transform
	FollowSpeed float32
}

func init() {
	behaviour.RegisterScript("CameraTracker", func() behaviour.Component {
		return &CameraTracker{FollowSpeed: 0.25}
	})
}

// NewCameraTracker builds a tracker locked onto the target transform.
func NewCameraTracker(target *behaviour.Transform, followSpeed float32) (*CameraTracker, error) {
	if target == nil {
		return nil, errors.New("camera tracker needs a target transform")
	}
	if followSpeed < 0 {
		return nil, fmt.Errorf("camera follow speed must be >= 0, got %v", followSpeed)
	}
	return &CameraTracker{Target: target, FollowSpeed: followSpeed}, nil
}

func (c *CameraTracker) Start() {
	if c.Target == nil {
		logger.Init()
		name := ""
		if obj := c.GetGameObject(); obj != nil {
			name = obj.Name
		}
		logger.Log.Warn("CameraTracker has no target, disabling", zap.String("object", name))
		c.SetEnabled(false)
	}
}

func (c *CameraTracker) Update(deltaTime float32) {
	if c.Target == nil {
		return
	}
	t := c.GetGameObject().Transform
	t.Rotation = steering.FaceTarget(t.Rotation, t.Position, c.Target.Position, deltaTime, c.FollowSpeed)
}

func (c *CameraTracker) FixedUpdate(step float32) {}
