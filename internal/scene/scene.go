package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scene data structures (must match editor format)
type Data struct {
	Tank    *Tank    `json:"tank"`
	Schools []School `json:"schools,omitempty"`
	Camera  *Camera  `json:"camera,omitempty"`
}

// Tank describes the glass box and the static obstacles inside it.
// Size components are full extents.
type Tank struct {
	Center  [3]float32       `json:"center"`
	Size    [3]float32       `json:"size"`
	Spheres []SphereObstacle `json:"spheres,omitempty"`
	Panels  []PanelObstacle  `json:"panels,omitempty"`
}

type SphereObstacle struct {
	Name   string     `json:"name,omitempty"`
	Center [3]float32 `json:"center"`
	Radius float32    `json:"radius"`
}

type PanelObstacle struct {
	Name    string        `json:"name,omitempty"`
	Corners [4][3]float32 `json:"corners"`
}

// School spawns Count fish sharing one steering configuration, spread
// around SpawnPoint. Each fish derives its own seed from Seed.
type School struct {
	Name              string     `json:"name"`
	Count             int        `json:"count"`
	SpawnPoint        [3]float32 `json:"spawn_point"`
	SpawnRadius       float32    `json:"spawn_radius"`
	Seed              int64      `json:"seed"`
	SensingDistance   float32    `json:"sensing_distance"`
	SwimSpeedMin      float32    `json:"swim_speed_min"`
	SwimSpeedMax      float32    `json:"swim_speed_max"`
	MaxTurnRate       float32    `json:"max_turn_rate"`
	MaxWanderAngleDeg float32    `json:"max_wander_angle_deg"`
	WanderPeriod      float32    `json:"wander_period"`
	WanderProbability float32    `json:"wander_probability"`
}

type Camera struct {
	Name        string     `json:"name,omitempty"`
	Position    [3]float32 `json:"position"`
	FOV         float32    `json:"fov,omitempty"`
	Near        float32    `json:"near,omitempty"`
	Far         float32    `json:"far,omitempty"`
	Follow      string     `json:"follow,omitempty"`
	FollowSpeed float32    `json:"follow_speed,omitempty"`
}

// Load reads and validates a scene file. Any problem is fatal to the
// caller; a simulation must not start from a broken scene.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scene file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("could not parse scene file %s: %w", path, err)
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &data, nil
}

// Validate checks the structural invariants the simulation relies on.
func (d *Data) Validate() error {
	if d.Tank == nil {
		return fmt.Errorf("missing tank block: agents have no reference point without it")
	}
	for i := 0; i < 3; i++ {
		if d.Tank.Size[i] <= 0 {
			return fmt.Errorf("tank size must be positive on every axis, got %v", d.Tank.Size)
		}
	}
	for _, s := range d.Tank.Spheres {
		if s.Radius <= 0 {
			return fmt.Errorf("sphere obstacle %q needs a positive radius, got %v", s.Name, s.Radius)
		}
	}

	names := make(map[string]bool, len(d.Schools))
	for _, school := range d.Schools {
		if school.Name == "" {
			return fmt.Errorf("every school needs a name")
		}
		if names[school.Name] {
			return fmt.Errorf("duplicate school name %q", school.Name)
		}
		names[school.Name] = true
		if school.Count <= 0 {
			return fmt.Errorf("school %q needs a positive count, got %d", school.Name, school.Count)
		}
		if school.SpawnRadius < 0 {
			return fmt.Errorf("school %q spawn radius must not be negative, got %v", school.Name, school.SpawnRadius)
		}
		if school.SensingDistance <= 0 {
			return fmt.Errorf("school %q needs a positive sensing distance", school.Name)
		}
		if school.SwimSpeedMax <= 0 {
			return fmt.Errorf("school %q needs a positive maximum swim speed", school.Name)
		}
		if school.SwimSpeedMin < 0 || school.SwimSpeedMin > school.SwimSpeedMax {
			return fmt.Errorf("school %q swim speed range [%v, %v] is invalid", school.Name, school.SwimSpeedMin, school.SwimSpeedMax)
		}
		if school.MaxTurnRate <= 0 {
			return fmt.Errorf("school %q needs a positive max turn rate", school.Name)
		}
		if school.MaxWanderAngleDeg < 0 {
			return fmt.Errorf("school %q max wander angle must not be negative", school.Name)
		}
		if school.WanderPeriod <= 0 {
			return fmt.Errorf("school %q needs a positive wander period", school.Name)
		}
		if school.WanderProbability < 0 || school.WanderProbability > 1 {
			return fmt.Errorf("school %q wander probability must be in [0,1], got %v", school.Name, school.WanderProbability)
		}
	}

	if d.Camera != nil {
		if d.Camera.FollowSpeed < 0 {
			return fmt.Errorf("camera follow speed must not be negative, got %v", d.Camera.FollowSpeed)
		}
		if d.Camera.Follow != "" && !d.followResolves() {
			return fmt.Errorf("camera follows %q but no school spawns a fish with that name", d.Camera.Follow)
		}
	}
	return nil
}

// followResolves reports whether the camera follow target names a fish
// some school will spawn. Fish are named "<school>-<index>".
func (d *Data) followResolves() bool {
	for _, school := range d.Schools {
		for i := 0; i < school.Count; i++ {
			if d.Camera.Follow == fmt.Sprintf("%s-%d", school.Name, i) {
				return true
			}
		}
	}
	return false
}
