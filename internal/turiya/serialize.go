package turiya

// Snapshot is Router's serializable state.
type Snapshot struct {
	Cfg            Config
	Lambda         float64
	TotalDecisions int
	Arms           map[Tier]armStats
}

// Serialize captures the router's current state for persistence
// across restarts (spec §4.8 serialize()).
func (r *Router) Serialize() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	arms := make(map[Tier]armStats, len(r.arms))
	for t, a := range r.arms {
		arms[t] = a
	}
	return Snapshot{
		Cfg:            r.cfg,
		Lambda:         r.lambda,
		TotalDecisions: r.totalDecisions,
		Arms:           arms,
	}
}

// Deserialize rebuilds a Router from a Snapshot (spec §4.8 deserialize()).
func Deserialize(snap Snapshot) *Router {
	r := New(snap.Cfg)
	r.lambda = snap.Lambda
	r.totalDecisions = snap.TotalDecisions
	for t, a := range snap.Arms {
		r.arms[t] = a
	}
	return r
}
