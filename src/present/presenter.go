package present

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tubetale/tubetale/src/charts"
)

// Presenter turns reports into view trees and mounts their charts. The
// upstream prose is AI-generated and untrusted, so everything textual goes
// through the sanitizer.
type Presenter struct {
	policy *bluemonday.Policy
	charts *charts.Registry
}

func New(registry *charts.Registry) *Presenter {
	if registry == nil {
		registry = charts.NewRegistry(nil)
	}
	return &Presenter{
		policy: bluemonday.StrictPolicy(),
		charts: registry,
	}
}

// Charts exposes the registry the presenter mounts into.
func (p *Presenter) Charts() *charts.Registry {
	return p.charts
}

func (p *Presenter) clean(s string) string {
	return strings.TrimSpace(p.policy.Sanitize(s))
}

func (p *Presenter) mount(region string, spec charts.Spec) (ChartRef, bool) {
	h := p.charts.Render(region, spec)
	if h == nil {
		return ChartRef{}, false
	}
	return ChartRef{Region: region, Handle: h.ID}, true
}
