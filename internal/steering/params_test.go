package steering

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func validParams() Params {
	return Params{
		SensingDistance:   0.8,
		SwimSpeedMin:      0.5,
		SwimSpeedMax:      2.0,
		MaxTurnRate:       6.0,
		MaxWanderAngle:    mgl32.DegToRad(90),
		WanderPeriod:      0.8,
		WanderProbability: 0.5,
		TankCenter:        mgl32.Vec3{0, 0, 0},
		Seed:              42,
	}
}

func TestParamsValidateAcceptsGoodConfig(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Errorf("Valid params rejected: %v", err)
	}
}

func TestParamsValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero sensing distance", func(p *Params) { p.SensingDistance = 0 }},
		{"negative sensing distance", func(p *Params) { p.SensingDistance = -1 }},
		{"negative min speed", func(p *Params) { p.SwimSpeedMin = -0.1 }},
		{"zero max speed", func(p *Params) { p.SwimSpeedMax = 0 }},
		{"inverted speed range", func(p *Params) { p.SwimSpeedMin = 3; p.SwimSpeedMax = 2 }},
		{"zero turn rate", func(p *Params) { p.MaxTurnRate = 0 }},
		{"negative wander angle", func(p *Params) { p.MaxWanderAngle = -0.1 }},
		{"zero wander period", func(p *Params) { p.WanderPeriod = 0 }},
		{"probability below zero", func(p *Params) { p.WanderProbability = -0.01 }},
		{"probability above one", func(p *Params) { p.WanderProbability = 1.01 }},
	}

	for _, c := range cases {
		p := validParams()
		c.mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", c.name)
		}
	}
}
