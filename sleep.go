package physics

// sleepState is the manager's cross-tick memory for one island identity: a
// running count of consecutive ticks every body in the island has been
// under the velocity threshold, and whether the island (and therefore
// every body in it) is currently asleep.
type sleepState struct {
	fallAsleepFrames uint
	asleep           bool
}

// sleepManager matches each tick's freshly rebuilt islands against the
// previous tick's by identity (Island.Identity) and carries the
// fall-asleep counter forward when the identity is unchanged. Islands are
// rebuilt from scratch every tick, so this is the only state that
// survives across ticks for the sleep feature.
type sleepManager struct {
	byIdentity map[sleepKey]*sleepState
}

type sleepKey struct {
	firstBodySlot uint32
	edgeSum       uint64
}

func newSleepManager() *sleepManager {
	return &sleepManager{byIdentity: make(map[sleepKey]*sleepState)}
}

// eligible reports whether every body in the island is a sleep candidate
// this tick: the island permits sleep at all (no rope, no CanSleep==false
// constraint) and every dynamic body's linear speed is under the configured
// threshold.
func eligible(isl Island, bodies []*Body, threshold float64) bool {
	if !isl.CanSleep {
		return false
	}
	thresholdSq := threshold * threshold
	for _, idx := range isl.Bodies {
		b := bodies[idx]
		if !b.Mass.SeesForces() {
			continue // static/kinematic bodies never block a sleep vote
		}
		if b.speedSquared() >= thresholdSq {
			return false
		}
	}
	return true
}

// update advances every current-tick island's sleep bookkeeping and
// returns, per island (by index, same order as islands), whether it is
// asleep for this tick. Stale identities (islands that didn't reappear
// this tick) are dropped so the map doesn't grow unboundedly across a
// simulation with churning topology.
func (m *sleepManager) update(islands []Island, bodies []*Body, cfg TuningConstants) []bool {
	seen := make(map[sleepKey]bool, len(islands))
	asleep := make([]bool, len(islands))

	for i, isl := range islands {
		slot, sum := isl.Identity()
		key := sleepKey{firstBodySlot: slot, edgeSum: sum}
		seen[key] = true

		st := m.byIdentity[key]
		if st == nil {
			st = &sleepState{}
			m.byIdentity[key] = st
		}

		if eligible(isl, bodies, cfg.SleepVelocityThreshold) {
			if st.fallAsleepFrames < cfg.FallAsleepFrames {
				st.fallAsleepFrames++
			}
			if st.fallAsleepFrames >= cfg.FallAsleepFrames {
				st.asleep = true
			}
		} else {
			st.fallAsleepFrames = 0
			st.asleep = false
		}
		asleep[i] = st.asleep
	}

	for key := range m.byIdentity {
		if !seen[key] {
			delete(m.byIdentity, key)
		}
	}
	return asleep
}

// wake forces every tracked state matching the given island identities
// back to awake with a reset counter: an external force, impulse, or
// newly formed contact/constraint touching a sleeping island wakes it
// immediately rather than waiting out FallAsleepFrames again.
func (m *sleepManager) wake(slot uint32, edgeSum uint64) {
	key := sleepKey{firstBodySlot: slot, edgeSum: edgeSum}
	if st, ok := m.byIdentity[key]; ok {
		st.fallAsleepFrames = 0
		st.asleep = false
	}
}
