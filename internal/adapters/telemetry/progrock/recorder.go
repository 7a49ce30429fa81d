// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/libtarget/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	summary *Summary
}

// New creates a new Recorder writing to a fresh tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder forwarding status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	summary := NewSummary(w)
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(summary),
		summary: summary,
	}
}

// Record starts recording a new vertex. Vertex names are unique within a
// session, so the digest of the name identifies the vertex.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	var cfg ports.VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var vopts []progrock.VertexOpt
	if cfg.Internal {
		vopts = append(vopts, progrock.Internal())
	}

	v := r.rec.Vertex(digest.FromString(name), name, vopts...)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Summary returns the tally of the vertices recorded so far.
func (r *Recorder) Summary() *Summary {
	return r.summary
}

// Counts returns the tally of the summary writer.
func (r *Recorder) Counts() (completed, cached, failed int) {
	return r.summary.Counts()
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.summary.Close()
}
