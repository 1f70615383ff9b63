// Package gossip implements SWIM-inspired peer-view propagation and
// suspicion tracking over the actor mesh's peer channels (spec §4.10).
package gossip

// Status is a peer's believed liveness.
type Status string

const (
	StatusAlive   Status = "alive"
	StatusSuspect Status = "suspect"
	StatusDead    Status = "dead"
)

// severityRank orders statuses from least to most alarming, used by
// the merge rule's "worse status wins" tie-break.
var severityRank = map[Status]int{
	StatusAlive:   0,
	StatusSuspect: 1,
	StatusDead:    2,
}

func worseOf(a, b Status) Status {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}

// PeerView is one actor's believed state of a peer, as gossiped
// between mesh nodes.
type PeerView struct {
	ActorID      string
	Expertise    []string
	Capabilities []string
	Status       Status
	Generation   int64
	LastSeenMs   int64
}

// Merge applies the SWIM merge rule: the higher generation always wins
// and is returned unchanged; on equal generation the worse (more
// alarming) status wins and LastSeen becomes the newer of the two
// timestamps.
func Merge(local, incoming PeerView) PeerView {
	switch {
	case incoming.Generation > local.Generation:
		return incoming
	case incoming.Generation < local.Generation:
		return local
	default:
		merged := local
		merged.Status = worseOf(local.Status, incoming.Status)
		if incoming.LastSeenMs > merged.LastSeenMs {
			merged.LastSeenMs = incoming.LastSeenMs
		}
		return merged
	}
}
