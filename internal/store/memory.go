package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore keeps view rows in process. It backs local runs and tests;
// the aggregation layer sees the same contract as the real backends.
type MemoryStore struct {
	mu    sync.RWMutex
	views map[string][]Row
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{views: make(map[string][]Row)}
}

func (s *MemoryStore) Load(view string, rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[view] = append(s.views[view], rows...)
}

func (s *MemoryStore) Select(_ context.Context, view string, filters ...Filter) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Row, 0, len(s.views[view]))
	for _, r := range s.views[view] {
		if rowMatches(r, filters) {
			out = append(out, r)
		}
	}
	return out, nil
}

func rowMatches(r Row, filters []Filter) bool {
	for _, f := range filters {
		v := stringify(r[f.Column])
		switch f.Op {
		case OpEq:
			if v != stringify(f.Value) {
				return false
			}
		case OpIn:
			found := false
			for _, want := range f.Values {
				if v == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case OpILike:
			if !strings.Contains(strings.ToLower(v), strings.ToLower(stringify(f.Value))) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
