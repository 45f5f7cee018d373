// Package wizard drives the step-by-step bank configurator as an
// explicit finite state machine. The UI fires named events; parameter
// edits are only accepted in the step that owns them.
package wizard

import (
	"errors"
	"fmt"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/product"
)

// State is one configurator step.
type State int

const (
	StateInitial State = iota
	StateSize
	StateColor
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateSize:
		return "size"
	case StateColor:
		return "color"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event advances or rewinds the configurator.
type Event int

const (
	EventStart Event = iota
	EventNext
	EventBack
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventNext:
		return "next"
	case EventBack:
		return "back"
	case EventReset:
		return "reset"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// ErrInvalidTransition reports an event the current state does not
// accept.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrWrongState reports a parameter edit outside its owning step.
var ErrWrongState = errors.New("wrong state")

// transitions is the full event table. Reset is accepted everywhere.
var transitions = map[State]map[Event]State{
	StateInitial: {
		EventStart: StateSize,
	},
	StateSize: {
		EventNext: StateColor,
		EventBack: StateInitial,
	},
	StateColor: {
		EventNext: StateFinished,
		EventBack: StateSize,
	},
	StateFinished: {},
}

// Wizard accumulates bank parameters across the steps.
type Wizard struct {
	state  State
	params product.BankParams
}

// New returns a wizard in the initial state carrying the stock bank.
func New() *Wizard {
	return &Wizard{state: StateInitial, params: product.DefaultBank()}
}

// State returns the current step.
func (w *Wizard) State() State {
	return w.state
}

// Finished reports whether configuration is complete.
func (w *Wizard) Finished() bool {
	return w.state == StateFinished
}

// Params returns the accumulated, clamped bank parameters.
func (w *Wizard) Params() product.BankParams {
	return w.params.Clamp()
}

// Fire applies an event. Unknown state/event pairs leave the wizard
// unchanged and return ErrInvalidTransition.
func (w *Wizard) Fire(e Event) error {
	if e == EventReset {
		w.state = StateInitial
		w.params = product.DefaultBank()
		return nil
	}
	next, ok := transitions[w.state][e]
	if !ok {
		return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, e, w.state)
	}
	w.state = next
	return nil
}

// SetSize records cell dimensions and grid counts. Only valid in the
// size step; dimensions are validated, counts clamped later.
func (w *Wizard) SetSize(width, height, depth float64, rows, columns int) error {
	if w.state != StateSize {
		return fmt.Errorf("%w: size is edited in state %s, not %s", ErrWrongState, StateSize, w.state)
	}
	p := w.params
	p.Width, p.Height, p.Depth = width, height, depth
	p.Rows, p.Columns = rows, columns
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	return nil
}

// SetColor records the finish color. Only valid in the color step.
func (w *Wizard) SetColor(hex string) error {
	if w.state != StateColor {
		return fmt.Errorf("%w: color is edited in state %s, not %s", ErrWrongState, StateColor, w.state)
	}
	if _, _, _, err := catalog.ParseHex(hex); err != nil {
		return err
	}
	w.params.Color = hex
	return nil
}
