package charts

import (
	"sync"

	"github.com/google/uuid"
)

// Handle is one live chart instance mounted on a target region.
type Handle struct {
	ID     string `json:"id"`
	Region string `json:"region"`
	Spec   Spec   `json:"spec"`

	mu       sync.Mutex
	disposed bool
}

// Dispose releases the instance. Safe to call more than once.
func (h *Handle) Dispose() {
	h.mu.Lock()
	h.disposed = true
	h.mu.Unlock()
}

// Disposed reports whether the instance has been released.
func (h *Handle) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// Registry tracks which chart instance is mounted on which region, so a
// re-render replaces the previous chart instead of stacking on top of it.
type Registry struct {
	mu     sync.Mutex
	active map[string]*Handle
	exists func(region string) bool
}

// NewRegistry builds a registry over a region lookup. A nil lookup treats
// every region as present.
func NewRegistry(exists func(region string) bool) *Registry {
	return &Registry{
		active: make(map[string]*Handle),
		exists: exists,
	}
}

// Render mounts a spec on a region, disposing whatever was there first. It is
// a no-op returning nil when the region is absent.
func (r *Registry) Render(region string, spec Spec) *Handle {
	if r.exists != nil && !r.exists(region) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.active[region]; ok {
		prev.Dispose()
	}
	h := &Handle{ID: uuid.NewString(), Region: region, Spec: spec}
	r.active[region] = h
	return h
}

// Active returns the live handle for a region, if any.
func (r *Registry) Active(region string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.active[region]
	return h, ok
}

// Handles returns all live handles, for serializing the current chart set.
func (r *Registry) Handles() []*Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Handle, 0, len(r.active))
	for _, h := range r.active {
		out = append(out, h)
	}
	return out
}

// Clear disposes every live chart. Used on reset.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for region, h := range r.active {
		h.Dispose()
		delete(r.active, region)
	}
}
