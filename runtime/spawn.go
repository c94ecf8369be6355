package main

import (
	"fmt"
	"math"
	"math/rand"

	"Fishtank3D/internal/behaviour"
	"Fishtank3D/internal/logger"
	"Fishtank3D/internal/scene"
	"Fishtank3D/internal/steering"
	"Fishtank3D/internal/world"
	"Fishtank3D/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// spawnMargin keeps fish off the glass at spawn time.
const spawnMargin = 0.5

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// buildTank turns the scene tank block into collision geometry.
func buildTank(sc *scene.Tank) (*world.Tank, error) {
	tank, err := world.NewTank(vec3(sc.Center), vec3(sc.Size))
	if err != nil {
		return nil, err
	}
	for _, s := range sc.Spheres {
		if err := tank.AddSphere(world.Sphere{Center: vec3(s.Center), Radius: s.Radius}); err != nil {
			return nil, fmt.Errorf("obstacle %q: %w", s.Name, err)
		}
	}
	for _, p := range sc.Panels {
		var panel world.Panel
		for i, c := range p.Corners {
			panel.Corners[i] = vec3(c)
		}
		tank.AddPanel(panel)
	}
	return tank, nil
}

// spawnScene replaces the current population with the scene's. Every
// object spawned by one call carries the same generation id tag.
func spawnScene(data *scene.Data, debug bool) error {
	tank, err := buildTank(data.Tank)
	if err != nil {
		return err
	}

	behaviour.GlobalComponentManager.Clear()
	generation := uuid.NewString()

	var sink steering.Sink
	if debug {
		sink = logSink{}
	}

	total := 0
	for _, school := range data.Schools {
		if err := spawnSchool(tank, school, generation, sink); err != nil {
			return err
		}
		total += school.Count
	}

	if data.Camera != nil {
		if err := spawnCamera(data.Camera, generation); err != nil {
			return err
		}
	}

	logger.Log.Info("Scene spawned",
		zap.String("generation", generation),
		zap.Int("schools", len(data.Schools)),
		zap.Int("fish", total))
	return nil
}

// spawnSchool places Count fish around the spawn point. Positions and
// headings come from the school seed, so respawns are reproducible.
func spawnSchool(tank *world.Tank, school scene.School, generation string, sink steering.Sink) error {
	rng := rand.New(rand.NewSource(school.Seed))
	for i := 0; i < school.Count; i++ {
		params := steering.Params{
			SensingDistance:   school.SensingDistance,
			SwimSpeedMin:      school.SwimSpeedMin,
			SwimSpeedMax:      school.SwimSpeedMax,
			MaxTurnRate:       school.MaxTurnRate,
			MaxWanderAngle:    mgl32.DegToRad(school.MaxWanderAngleDeg),
			WanderPeriod:      school.WanderPeriod,
			WanderProbability: school.WanderProbability,
			TankCenter:        tank.Center,
			Seed:              school.Seed + int64(i),
		}
		fish, err := scripts.NewFishBehaviour(params, tank)
		if err != nil {
			return fmt.Errorf("school %q: %w", school.Name, err)
		}
		if sink != nil {
			fish.SetDebugSink(sink)
		}

		offset := mgl32.Vec3{
			(rng.Float32()*2 - 1) * school.SpawnRadius,
			(rng.Float32()*2 - 1) * school.SpawnRadius,
			(rng.Float32()*2 - 1) * school.SpawnRadius,
		}
		obj := behaviour.NewGameObject(fmt.Sprintf("%s-%d", school.Name, i))
		obj.Tag = generation
		obj.Transform.Position = tank.ClampInside(vec3(school.SpawnPoint).Add(offset), spawnMargin)
		obj.Transform.Rotation = mgl32.QuatRotate(rng.Float32()*2*math.Pi, steering.WorldUp)
		obj.AddComponent(fish)
		behaviour.GlobalComponentManager.RegisterGameObject(obj)
	}
	return nil
}

func spawnCamera(cam *scene.Camera, generation string) error {
	obj := behaviour.NewGameObject(cameraName(cam))
	obj.Tag = generation
	obj.Transform.Position = vec3(cam.Position)

	lens := behaviour.NewCameraComponent()
	lens.IsMain = true
	if cam.FOV > 0 {
		lens.FOV = cam.FOV
	}
	if cam.Near > 0 {
		lens.Near = cam.Near
	}
	if cam.Far > 0 {
		lens.Far = cam.Far
	}
	obj.AddComponent(lens)

	if cam.Follow != "" {
		target := behaviour.GlobalComponentManager.FindGameObject(cam.Follow)
		if target == nil {
			return fmt.Errorf("camera follows %q but it was never spawned", cam.Follow)
		}
		tracker, err := scripts.NewCameraTracker(target.Transform, cam.FollowSpeed)
		if err != nil {
			return err
		}
		obj.AddComponent(tracker)
	}

	behaviour.GlobalComponentManager.RegisterGameObject(obj)
	return nil
}

func cameraName(cam *scene.Camera) string {
	if cam.Name != "" {
		return cam.Name
	}
	return "camera"
}

// logSink writes steering debug lines to the debug log when debugDraw
// is enabled.
type logSink struct{}

func (logSink) Lines(lines []steering.Line) {
	for _, l := range lines {
		logger.Log.Debug("Steering ray",
			zap.Any("from", l.From),
			zap.Any("to", l.To),
			zap.Any("color", l.Color))
	}
}
