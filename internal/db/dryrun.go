package db

import (
	"context"
	"fmt"
	"io"

	"github.com/tordrt/tablebuilder/internal/engine"
)

// DryRunStore records queries instead of executing them, optionally
// printing each one to a writer.
type DryRunStore struct {
	w       io.Writer
	trailer string
	queries []string
}

// NewDryRunStore creates a dry run store. w may be nil.
func NewDryRunStore(w io.Writer, trailer string) *DryRunStore {
	return &DryRunStore{w: w, trailer: trailer}
}

func (s *DryRunStore) Trailer() string {
	return s.trailer
}

func (s *DryRunStore) CreateTable(_ context.Context, _ string, query string) engine.Result {
	return s.record(query)
}

func (s *DryRunStore) DropTable(_ context.Context, _ string, query string) engine.Result {
	return s.record(query)
}

// Queries returns the recorded queries in execution order.
func (s *DryRunStore) Queries() []string {
	return append([]string(nil), s.queries...)
}

func (s *DryRunStore) record(query string) engine.Result {
	s.queries = append(s.queries, query)
	if s.w != nil {
		if _, err := fmt.Fprintln(s.w, query); err != nil {
			return engine.Result{LastError: err.Error()}
		}
	}
	return engine.Result{}
}
