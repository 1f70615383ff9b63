package triguna

import (
	"sync"

	"cogcore/internal/logging"
	"cogcore/internal/simplex"
	"cogcore/internal/types"
)

// influence is the fixed 3x6 affinity matrix mapping a six-signal
// observation onto raw (unnormalized) sattva/rajas/tamas affinities
// (spec §4.3). Rows: sattva, rajas, tamas. Columns: errorRate,
// tokenVelocity, loopCount, latency, successRate, userSatisfaction.
var influence = [3][6]float64{
	{-0.8, -0.1, -0.2, -0.3, 0.9, 0.8},
	{0.0, 0.8, 0.6, 0.1, -0.1, -0.2},
	{0.9, -0.1, 0.4, 0.8, -0.7, -0.5},
}

// Monitor is the single logical owner of the guna estimate; all
// mutation goes through its exported methods under its own lock
// (spec §7, "single logical owner").
type Monitor struct {
	cfg Config
	log *logging.Logger

	mu           sync.Mutex
	xHat         simplex.Vec2
	p            simplex.Mat2
	prevDominant types.Guna
	history      []types.GunaSnapshot

	handlers []func(Event)
}

// New constructs a Monitor seeded at cfg.InitialState.
func New(cfg Config) *Monitor {
	m := &Monitor{
		cfg: cfg,
		log: logging.Get(logging.CategoryTriguna),
		p:   simplex.IdentityMat2(),
	}
	m.xHat = simplex.ILRForward(m.cfg.InitialState)
	m.prevDominant = types.GunaState{Sattva: m.cfg.InitialState[0], Rajas: m.cfg.InitialState[1], Tamas: m.cfg.InitialState[2]}.Dominant()
	return m
}

// Subscribe registers an event handler invoked best-effort on dominant
// transitions and threshold crossings; a panicking handler never
// propagates out of Update.
func (m *Monitor) Subscribe(h func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, h)
}

// State returns the current guna estimate without mutating anything.
func (m *Monitor) State() types.GunaState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentStateLocked()
}

func (m *Monitor) currentStateLocked() types.GunaState {
	x := simplex.ILRInverse(m.xHat)
	clamped := simplex.ClampToSimplex(x, m.cfg.SimplexFloor)
	return types.GunaState{Sattva: clamped[0], Rajas: clamped[1], Tamas: clamped[2]}
}

// Update runs one predict/update cycle of the Kalman filter against obs
// and returns the resulting state along with any events raised. If the
// innovation covariance is singular, the update is skipped and the
// current state is returned unchanged (spec §4.3, §8 SingularMatrix).
func (m *Monitor) Update(obs types.Observation, nowMs int64) (types.GunaState, []Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	measurement := observationToSimplex(obs)
	z := simplex.ILRForward(measurement)

	// Predict.
	xPred := m.xHat
	q := simplex.Mat2{A: m.cfg.ProcessNoise, B: 0, C: 0, D: m.cfg.ProcessNoise}
	pPred := simplex.AddMat2(m.p, q)

	// Innovation.
	innovation := simplex.Vec2{X: z.X - xPred.X, Y: z.Y - xPred.Y}
	r := simplex.Mat2{A: m.cfg.MeasurementNoise, B: 0, C: 0, D: m.cfg.MeasurementNoise}
	s := simplex.AddMat2(pPred, r)

	sInv, ok := simplex.InverseMat2(s)
	if !ok {
		m.log.Warn("innovation covariance singular, skipping update")
		return m.currentStateLocked(), nil
	}

	k := simplex.MulMat2(pPred, sInv)
	gain := simplex.MulMat2Vec(k, innovation)
	m.xHat = simplex.Vec2{X: xPred.X + gain.X, Y: xPred.Y + gain.Y}

	identity := simplex.IdentityMat2()
	imk := simplex.SubMat2(identity, k)
	m.p = simplex.AddMat2(
		simplex.MulMat2(simplex.MulMat2(imk, pPred), simplex.TransposeMat2(imk)),
		simplex.MulMat2(simplex.MulMat2(k, r), simplex.TransposeMat2(k)),
	)

	state := m.currentStateLocked()
	dominant := state.Dominant()

	snapshot := types.GunaSnapshot{State: state, TimestampMs: nowMs, Dominant: dominant}
	m.history = append(m.history, snapshot)
	if cap := m.cfg.historyCap(); len(m.history) > cap {
		m.history = m.history[len(m.history)-cap:]
	}

	events := m.eventsForLocked(state, dominant)
	m.prevDominant = dominant
	m.emitLocked(events)
	return state, events
}

// Vacuum halves the retained history ring, the maintenance step the
// deep-sleep facts-vacuum handler runs against every subsystem that
// exposes one (spec §4.5 deep-sleep maintenance).
func (m *Monitor) Vacuum() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) <= 1 {
		return
	}
	keep := len(m.history) / 2
	m.history = append([]types.GunaSnapshot(nil), m.history[len(m.history)-keep:]...)
}

// History returns a copy of the bounded snapshot ring.
func (m *Monitor) History() []types.GunaSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.GunaSnapshot, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Monitor) emitLocked(events []Event) {
	for _, ev := range events {
		for _, h := range m.handlers {
			safeInvoke(h, ev)
		}
	}
}

func safeInvoke(h func(Event), ev Event) {
	defer func() {
		_ = recover()
	}()
	h(ev)
}

// observationToSimplex applies the influence matrix and a numerically
// stable softmax to project a raw six-signal observation onto the
// 2-simplex (spec §4.3).
func observationToSimplex(obs types.Observation) [3]float64 {
	v := obs.Vector()
	var a [3]float64
	for row := 0; row < 3; row++ {
		sum := 0.0
		for col := 0; col < 6; col++ {
			sum += influence[row][col] * v[col]
		}
		a[row] = sum
	}
	soft := simplex.Softmax(a[:])
	return [3]float64{soft[0], soft[1], soft[2]}
}
