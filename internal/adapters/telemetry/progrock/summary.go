package progrock

import (
	"sync"

	"github.com/vito/progrock"
)

type vertexState uint8

const (
	stateRunning vertexState = iota
	stateCompleted
	stateCached
	stateFailed
)

// Summary is a progrock.Writer that tallies vertex outcomes while forwarding
// every update to the next writer.
type Summary struct {
	next progrock.Writer

	mu     sync.Mutex
	states map[string]vertexState
	order  []string
}

// NewSummary creates a new Summary in front of next.
func NewSummary(next progrock.Writer) *Summary {
	return &Summary{
		next:   next,
		states: make(map[string]vertexState),
	}
}

// WriteStatus records the vertex states of u and forwards it.
func (s *Summary) WriteStatus(u *progrock.StatusUpdate) error {
	s.mu.Lock()
	for _, v := range u.Vertexes {
		if _, seen := s.states[v.Id]; !seen {
			s.order = append(s.order, v.Id)
		}
		s.states[v.Id] = stateOf(v)
	}
	s.mu.Unlock()

	return s.next.WriteStatus(u)
}

func stateOf(v *progrock.Vertex) vertexState {
	switch {
	case v.Error != nil:
		return stateFailed
	case v.Cached:
		return stateCached
	case v.Completed != nil:
		return stateCompleted
	default:
		return stateRunning
	}
}

// Close closes the next writer.
func (s *Summary) Close() error {
	return s.next.Close()
}

// Counts returns how many vertices completed, were cached and failed.
// Vertices still running are not counted.
func (s *Summary) Counts() (completed, cached, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		switch s.states[id] {
		case stateCompleted:
			completed++
		case stateCached:
			cached++
		case stateFailed:
			failed++
		case stateRunning:
		}
	}
	return completed, cached, failed
}
