package ui

import "sync"

// Region identifiers for the render surface. Components receive the surface
// by reference; nothing looks regions up by ad-hoc strings at call sites.
const (
	RegionSoloForm        = "form-solo"
	RegionBattleForm      = "form-battle"
	RegionTruthForm       = "form-truth"
	RegionResults         = "results"
	RegionError           = "error"
	RegionGrowthChart     = "chart-growth"
	RegionTopicChart      = "chart-topics"
	RegionComparisonChart = "chart-comparison"
)

// Region is one addressable slot of the display surface.
type Region struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Content any    `json:"content,omitempty"`
}

// Surface is the view-binding table: every region the UI can touch, built
// once at startup. It is the only mutable display state.
type Surface struct {
	mu      sync.Mutex
	regions map[string]*Region
	scroll  string
}

// NewSurface binds the standard region set.
func NewSurface() *Surface {
	s := &Surface{regions: make(map[string]*Region)}
	for _, id := range []string{
		RegionSoloForm, RegionBattleForm, RegionTruthForm,
		RegionResults, RegionError,
		RegionGrowthChart, RegionTopicChart, RegionComparisonChart,
	} {
		s.regions[id] = &Region{ID: id}
	}
	return s
}

// Has reports whether a region is bound.
func (s *Surface) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.regions[id]
	return ok
}

// Lookup returns a snapshot of one region.
func (s *Surface) Lookup(id string) (Region, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.regions[id]
	if !ok {
		return Region{}, false
	}
	return *r, true
}

// SetContent replaces a region's content. Unknown regions are ignored.
func (s *Surface) SetContent(id string, content any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.regions[id]; ok {
		r.Content = content
	}
}

// ScrollTarget returns the region most recently scrolled into view, or ""
// after a scroll to top.
func (s *Surface) ScrollTarget() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// Apply folds a batch of effects into the surface.
func (s *Surface) Apply(effects []Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range effects {
		switch e.Kind {
		case EffectShow:
			if r, ok := s.regions[e.Region]; ok {
				r.Visible = true
			}
		case EffectHide:
			if r, ok := s.regions[e.Region]; ok {
				r.Visible = false
			}
		case EffectClear:
			if r, ok := s.regions[e.Region]; ok {
				r.Visible = false
				r.Content = nil
			}
		case EffectSetText:
			if r, ok := s.regions[e.Region]; ok {
				r.Content = e.Message
			}
		case EffectScrollTo:
			s.scroll = e.Region
		case EffectScrollTop:
			s.scroll = ""
		}
	}
}
