package ui

import "sync"

// Form identifies one of the three input forms.
type Form string

const (
	FormNone   Form = ""
	FormSolo   Form = "solo"
	FormBattle Form = "battle"
	FormTruth  Form = "truth"
)

// Phase is the submission lifecycle phase of the active operation.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailed  Phase = "failed"
)

// State is the whole UI state: which form is visible, where the active
// submission is in its lifecycle, and the last surfaced error.
type State struct {
	ActiveForm Form   `json:"activeForm"`
	Phase      Phase  `json:"phase"`
	LastError  string `json:"lastError"`
}

// EventKind enumerates the state machine inputs.
type EventKind string

const (
	EventShowForm EventKind = "show-form"
	EventSubmit   EventKind = "submit"
	EventSucceed  EventKind = "succeed"
	EventFail     EventKind = "fail"
	EventReset    EventKind = "reset"
)

// Event is one state machine input.
type Event struct {
	Kind    EventKind
	Form    Form
	Message string
}

// EffectKind enumerates side effects the reducer requests; a separate apply
// step performs them on the surface.
type EffectKind string

const (
	EffectShow      EffectKind = "show"
	EffectHide      EffectKind = "hide"
	EffectClear     EffectKind = "clear"
	EffectSetText   EffectKind = "set-text"
	EffectScrollTo  EffectKind = "scroll-to"
	EffectScrollTop EffectKind = "scroll-top"
)

// Effect is one requested surface mutation.
type Effect struct {
	Kind    EffectKind
	Region  string
	Message string
}

var formRegions = map[Form]string{
	FormSolo:   RegionSoloForm,
	FormBattle: RegionBattleForm,
	FormTruth:  RegionTruthForm,
}

// FormRegion maps a form to its surface region.
func FormRegion(f Form) (string, bool) {
	r, ok := formRegions[f]
	return r, ok
}

// Reduce is the pure transition function: given a state and an event it
// returns the next state and the effects to apply. It never touches the
// surface itself.
func Reduce(s State, e Event) (State, []Effect) {
	switch e.Kind {
	case EventShowForm:
		target, ok := formRegions[e.Form]
		if !ok {
			return s, nil
		}
		s.ActiveForm = e.Form
		var effects []Effect
		for f, region := range formRegions {
			if f != e.Form {
				effects = append(effects, Effect{Kind: EffectHide, Region: region})
			}
		}
		effects = append(effects,
			Effect{Kind: EffectShow, Region: target},
			Effect{Kind: EffectScrollTo, Region: target},
		)
		return s, effects

	case EventSubmit:
		s.Phase = PhaseLoading
		s.LastError = ""
		return s, []Effect{
			{Kind: EffectHide, Region: RegionResults},
			{Kind: EffectHide, Region: RegionError},
		}

	case EventSucceed:
		s.Phase = PhaseSuccess
		return s, []Effect{
			{Kind: EffectShow, Region: RegionResults},
			{Kind: EffectScrollTo, Region: RegionResults},
		}

	case EventFail:
		s.Phase = PhaseFailed
		s.LastError = e.Message
		return s, []Effect{
			{Kind: EffectSetText, Region: RegionError, Message: e.Message},
			{Kind: EffectShow, Region: RegionError},
			{Kind: EffectScrollTo, Region: RegionError},
		}

	case EventReset:
		next := State{ActiveForm: FormNone, Phase: PhaseIdle}
		effects := []Effect{
			{Kind: EffectClear, Region: RegionResults},
			{Kind: EffectClear, Region: RegionError},
		}
		for _, region := range formRegions {
			effects = append(effects, Effect{Kind: EffectHide, Region: region})
		}
		effects = append(effects, Effect{Kind: EffectScrollTop})
		return next, effects
	}
	return s, nil
}

// Controller owns the UI state, the surface, and the per-operation generation
// counters that keep late responses from overwriting newer state.
type Controller struct {
	mu      sync.Mutex
	state   State
	gens    map[Form]uint64
	surface *Surface
}

func NewController(surface *Surface) *Controller {
	if surface == nil {
		surface = NewSurface()
	}
	return &Controller{
		state:   State{Phase: PhaseIdle},
		gens:    make(map[Form]uint64),
		surface: surface,
	}
}

// Surface exposes the bound render surface.
func (c *Controller) Surface() *Surface {
	return c.surface
}

// State returns a snapshot of the current UI state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Show makes one form visible and hides the others.
func (c *Controller) Show(f Form) {
	c.dispatch(Event{Kind: EventShowForm, Form: f})
}

// Begin moves the operation into the loading phase and returns the generation
// token the eventual completion must present.
func (c *Controller) Begin(f Form) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[f]++
	gen := c.gens[f]
	c.apply(Event{Kind: EventSubmit, Form: f})
	return gen
}

// Succeed completes a submission. A stale generation (reset or resubmission
// happened in the meantime) is discarded and reported as false.
func (c *Controller) Succeed(f Form, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[f] != gen {
		return false
	}
	c.apply(Event{Kind: EventSucceed, Form: f})
	return true
}

// Fail completes a submission with an error message, with the same staleness
// guard as Succeed.
func (c *Controller) Fail(f Form, gen uint64, msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[f] != gen {
		return false
	}
	c.apply(Event{Kind: EventFail, Form: f, Message: msg})
	return true
}

// Reset clears results and errors, hides every form and invalidates all
// in-flight generations. Idempotent.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for f := range c.gens {
		c.gens[f]++
	}
	c.apply(Event{Kind: EventReset})
}

func (c *Controller) dispatch(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(e)
}

// apply assumes c.mu is held.
func (c *Controller) apply(e Event) {
	next, effects := Reduce(c.state, e)
	c.state = next
	c.surface.Apply(effects)
}
