package physics

import "fmt"

// TuningConstants configures a World.
type TuningConstants struct {
	Substeps uint

	SleepVelocityThreshold float64
	FallAsleepFrames       uint

	MaxExpectedAcceleration float64

	MinBodiesPerThread int
	WorkerCount        int

	// LayerMaskMatrix[i] is a bitmask of the layers that collide with
	// layer i. A nil matrix means every layer collides with every other.
	LayerMaskMatrix []uint64
}

// DefaultTuningConstants returns reasonable defaults for a typical
// real-time simulation.
func DefaultTuningConstants() TuningConstants {
	return TuningConstants{
		Substeps:                10,
		SleepVelocityThreshold:  0.05,
		FallAsleepFrames:        30,
		MaxExpectedAcceleration: 400,
		MinBodiesPerThread:      32,
		WorkerCount:             4,
	}
}

// Validate rejects invalid configuration: TuningConstants.Substeps == 0 is
// rejected at construction.
func (t TuningConstants) Validate() error {
	if t.Substeps == 0 {
		return fmt.Errorf("phys2d: TuningConstants.Substeps must be non-zero")
	}
	return nil
}

func (t TuningConstants) layersCollide(a, b int) bool {
	if t.LayerMaskMatrix == nil {
		return true
	}
	if a < 0 || a >= len(t.LayerMaskMatrix) || b < 0 || b >= 64 {
		return true
	}
	return t.LayerMaskMatrix[a]&(1<<uint(b)) != 0
}
