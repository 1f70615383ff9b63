package supervisor

import "testing"

func TestBackoffDelayDoublesAndCaps(t *testing.T) {
	cfg := Config{InitialRestartDelayMs: 1000, MaxRestartDelayMs: 8000}
	cases := []struct {
		attempt int
		want    int64
	}{
		{1, 1000},
		{2, 2000},
		{3, 4000},
		{4, 8000},
		{5, 8000},
	}
	for _, c := range cases {
		if got := backoffDelay(cfg, c.attempt).Milliseconds(); got != c.want {
			t.Errorf("backoffDelay(attempt=%d) = %dms, want %dms", c.attempt, got, c.want)
		}
	}
}

func TestSeverityForHealth(t *testing.T) {
	cases := map[Health]Severity{
		HealthCrashed:  SeverityCritical,
		HealthDegraded: SeverityWarning,
		HealthHealthy:  SeverityInfo,
		HealthStopped:  SeverityInfo,
	}
	for h, want := range cases {
		if got := severityFor(h); got != want {
			t.Errorf("severityFor(%v) = %v, want %v", h, got, want)
		}
	}
}
