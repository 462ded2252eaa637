package mandel

import "sync"

// ViewportState owns the current viewport of an interactive session.
//
// Zoom and pan requests mutate it; render passes read it through Snapshot,
// which returns a copy. A pass started from a snapshot is therefore never
// affected by a later zoom.
//
// Thread safety: ViewportState is safe for concurrent use.
type ViewportState struct {
	mu      sync.RWMutex
	current Viewport
	initial Viewport
}

// NewViewportState creates a state holding v. Reset returns to v.
func NewViewportState(v Viewport) (*ViewportState, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &ViewportState{current: v, initial: v}, nil
}

// Snapshot returns a copy of the current viewport.
func (s *ViewportState) Snapshot() Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the current viewport after validating it.
func (s *ViewportState) Set(v Viewport) error {
	if err := v.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = v
	s.mu.Unlock()
	return nil
}

// Reset restores the viewport the state was created with.
func (s *ViewportState) Reset() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.initial
	return s.current
}

// ZoomAt applies Viewport.ZoomAt to the current viewport and stores the
// result. On error the state is unchanged.
func (s *ViewportState) ZoomAt(anchorX, anchorY, direction int, zoomFactor float64, width, height int) (Viewport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zoomed, err := s.current.ZoomAt(anchorX, anchorY, direction, zoomFactor, width, height)
	if err != nil {
		return s.current, err
	}
	s.current = zoomed
	return zoomed, nil
}

// Pan applies Viewport.Pan to the current viewport and stores the result.
// On error the state is unchanged.
func (s *ViewportState) Pan(dx, dy, width, height int) (Viewport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	panned, err := s.current.Pan(dx, dy, width, height)
	if err != nil {
		return s.current, err
	}
	s.current = panned
	return panned, nil
}
