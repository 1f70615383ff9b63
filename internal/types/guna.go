package types

// Guna names the three opaque health-state components tracked by the
// Triguna monitor (spec §3, glossary): sattva (calm), rajas (activity),
// tamas (stagnation). The implementation treats these as labels only.
type Guna string

const (
	Sattva Guna = "sattva"
	Rajas  Guna = "rajas"
	Tamas  Guna = "tamas"
)

// GunaState is a point on the 2-simplex: Sattva+Rajas+Tamas == 1,
// each component >= the configured simplex floor.
type GunaState struct {
	Sattva float64
	Rajas  float64
	Tamas  float64
}

// Sum returns the component sum, which should be ~1.0 for any valid state.
func (g GunaState) Sum() float64 {
	return g.Sattva + g.Rajas + g.Tamas
}

// Dominant returns the argmax component, tie-broken sattva -> rajas -> tamas.
func (g GunaState) Dominant() Guna {
	dominant, best := Sattva, g.Sattva
	if g.Rajas > best {
		dominant, best = Rajas, g.Rajas
	}
	if g.Tamas > best {
		dominant = Tamas
	}
	return dominant
}

// Get returns the value of a named component.
func (g GunaState) Get(which Guna) float64 {
	switch which {
	case Sattva:
		return g.Sattva
	case Rajas:
		return g.Rajas
	default:
		return g.Tamas
	}
}

// GunaSnapshot is one point in the bounded history ring (spec §3).
type GunaSnapshot struct {
	State       GunaState
	TimestampMs int64
	Dominant    Guna
}

// Observation is the six-signal input vector to the Triguna monitor
// (spec §3, §4.3), each component normalized to [0,1].
type Observation struct {
	ErrorRate         float64
	TokenVelocity     float64
	LoopCount         float64
	Latency           float64
	SuccessRate       float64
	UserSatisfaction  float64
}

// Vector returns the observation as the 6-element slice the influence
// matrix multiplies against.
func (o Observation) Vector() [6]float64 {
	return [6]float64{o.ErrorRate, o.TokenVelocity, o.LoopCount, o.Latency, o.SuccessRate, o.UserSatisfaction}
}
