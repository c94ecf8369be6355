package main

import (
	"Fishtank3D/internal/behaviour"
	"Fishtank3D/internal/logger"
	"Fishtank3D/scripts"

	"go.uber.org/zap"
)

// Simulated seconds between school reports.
const statsEvery = 10.0

// StatsBehaviour reports school health through the loose behaviour
// hook: population, average swim speed and how many fish are dodging.
type StatsBehaviour struct {
	elapsed float64
}

func (s *StatsBehaviour) Start() {
	logger.Log.Info("School stats enabled")
}

func (s *StatsBehaviour) Update(deltaTime float32) {
	s.elapsed += float64(deltaTime)
	if s.elapsed < statsEvery {
		return
	}
	s.elapsed = 0

	fish, avgSpeed, avoiding := collectStats()
	if fish == 0 {
		return
	}
	logger.Log.Info("School stats",
		zap.Int("fish", fish),
		zap.Float32("avg_speed", avgSpeed),
		zap.Int("avoiding", avoiding))
}

func (s *StatsBehaviour) UpdateFixed(step float32) {}

func collectStats() (fish int, avgSpeed float32, avoiding int) {
	var speedSum float32
	for _, obj := range behaviour.GlobalComponentManager.GetAllGameObjects() {
		for _, comp := range obj.Components {
			fb, ok := comp.(*scripts.FishBehaviour)
			if !ok || fb.Agent() == nil {
				continue
			}
			fish++
			speedSum += fb.Agent().Speed()
			if fb.Agent().Avoiding() {
				avoiding++
			}
		}
	}
	if fish > 0 {
		avgSpeed = speedSum / float32(fish)
	}
	return fish, avgSpeed, avoiding
}
