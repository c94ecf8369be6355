package engine

import (
	"context"
	"time"

	"Fishtank3D/internal/behaviour"
	"Fishtank3D/internal/logger"

	"go.uber.org/zap"
)

// How much simulated time passes between stats log lines.
const statsInterval = 5.0

// Options configures the simulation loop.
type Options struct {
	// TickRate paces the loop in ticks per second. Zero or negative
	// runs unpaced, as fast as the host allows.
	TickRate int

	// FixedStep, when positive, makes every tick advance exactly this
	// much simulated time regardless of wall time. Zero uses the
	// clock's measured elapsed time.
	FixedStep float32

	// RunFor stops the loop after this much simulated time. Zero runs
	// until the context is cancelled.
	RunFor float64
}

// Aquarium drives the headless simulation: it ticks the behaviour
// managers, keeps the fixed-update cadence and reports progress.
type Aquarium struct {
	opts  Options
	clock Clock

	frameTrackId   int
	sinceFixed     float32
	simTime        float64
	ticks          uint64
	lastStats      float64
	onTickCallback func(deltaTime float64)
}

func NewAquarium(opts Options) *Aquarium {
	logger.Init()
	logger.Log.Info("Fishtank3D initializing...",
		zap.Int("tick_rate", opts.TickRate),
		zap.Float32("fixed_step", opts.FixedStep))
	return &Aquarium{
		opts:  opts,
		clock: NewRealClock(),
	}
}

// SetClock swaps the time source. Call before Run.
func (aq *Aquarium) SetClock(clock Clock) {
	aq.clock = clock
}

// SetOnTickCallback sets a callback invoked at the end of every tick,
// after all behaviours have updated.
func (aq *Aquarium) SetOnTickCallback(callback func(deltaTime float64)) {
	aq.onTickCallback = callback
}

// Time returns the accumulated simulated seconds.
func (aq *Aquarium) Time() float64 {
	return aq.simTime
}

// Ticks returns how many ticks have run.
func (aq *Aquarium) Ticks() uint64 {
	return aq.ticks
}

// StepOnce advances the simulation by one tick of deltaTime seconds.
// Fixed updates fire whenever the frame counter wraps and carry the
// elapsed time accumulated since the previous one.
func (aq *Aquarium) StepOnce(deltaTime float32) {
	aq.simTime += float64(deltaTime)
	aq.ticks++
	aq.sinceFixed += deltaTime

	if aq.frameTrackId >= 2 {
		behaviour.GlobalBehaviourManager.UpdateAllFixed(aq.sinceFixed)
		aq.sinceFixed = 0
		aq.frameTrackId = 0
	}
	behaviour.GlobalBehaviourManager.UpdateAll(deltaTime)

	if aq.onTickCallback != nil {
		aq.onTickCallback(float64(deltaTime))
	}
	aq.frameTrackId++
}

// RunTicks advances exactly n ticks of deltaTime each, unpaced.
// Deterministic driver for tests and scripted runs.
func (aq *Aquarium) RunTicks(n int, deltaTime float32) {
	for i := 0; i < n; i++ {
		aq.StepOnce(deltaTime)
	}
}

// Run ticks the simulation until the context is cancelled or the
// configured run budget is spent. Returns the context error on
// cancellation, nil when the budget completed.
func (aq *Aquarium) Run(ctx context.Context) error {
	var tickC <-chan time.Time
	if aq.opts.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(aq.opts.TickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	logger.Log.Info("Aquarium running")
	lastTime := aq.clock.Now()

	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				aq.logStop()
				return ctx.Err()
			case <-tickC:
			}
		} else {
			select {
			case <-ctx.Done():
				aq.logStop()
				return ctx.Err()
			default:
			}
		}

		currentTime := aq.clock.Now()
		deltaTime := currentTime - lastTime
		lastTime = currentTime
		if aq.opts.FixedStep > 0 {
			deltaTime = float64(aq.opts.FixedStep)
		}

		aq.StepOnce(float32(deltaTime))

		if aq.simTime-aq.lastStats >= statsInterval {
			aq.lastStats = aq.simTime
			logger.Log.Info("Aquarium stats",
				zap.Float64("sim_seconds", aq.simTime),
				zap.Uint64("ticks", aq.ticks),
				zap.Int("objects", len(behaviour.GlobalComponentManager.GetAllGameObjects())))
		}

		if aq.opts.RunFor > 0 && aq.simTime >= aq.opts.RunFor {
			aq.logStop()
			return nil
		}
	}
}

func (aq *Aquarium) logStop() {
	logger.Log.Info("Aquarium stopped",
		zap.Float64("sim_seconds", aq.simTime),
		zap.Uint64("ticks", aq.ticks))
}
