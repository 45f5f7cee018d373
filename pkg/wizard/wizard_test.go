package wizard

import (
	"errors"
	"testing"

	"github.com/chazu/ifcforge/pkg/product"
)

func TestHappyPath(t *testing.T) {
	w := New()
	if w.State() != StateInitial {
		t.Fatalf("start state = %s", w.State())
	}

	steps := []struct {
		event Event
		want  State
	}{
		{EventStart, StateSize},
		{EventNext, StateColor},
		{EventNext, StateFinished},
	}
	for _, s := range steps {
		if err := w.Fire(s.event); err != nil {
			t.Fatalf("Fire(%s): %v", s.event, err)
		}
		if w.State() != s.want {
			t.Fatalf("after %s: state = %s, want %s", s.event, w.State(), s.want)
		}
	}
	if !w.Finished() {
		t.Error("wizard should be finished")
	}
}

func TestInvalidTransitions(t *testing.T) {
	cases := []struct {
		state State
		event Event
	}{
		{StateInitial, EventNext},
		{StateInitial, EventBack},
		{StateSize, EventStart},
		{StateFinished, EventNext},
		{StateFinished, EventStart},
	}
	for _, c := range cases {
		w := &Wizard{state: c.state, params: product.DefaultBank()}
		if err := w.Fire(c.event); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s + %s: error = %v, want ErrInvalidTransition", c.state, c.event, err)
		}
		if w.State() != c.state {
			t.Errorf("%s + %s: state changed to %s", c.state, c.event, w.State())
		}
	}
}

func TestBack(t *testing.T) {
	w := New()
	w.Fire(EventStart)
	w.Fire(EventNext)
	if err := w.Fire(EventBack); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateSize {
		t.Errorf("state = %s, want %s", w.State(), StateSize)
	}
}

func TestResetAnywhere(t *testing.T) {
	w := New()
	w.Fire(EventStart)
	w.SetSize(0.5, 0.4, 0.3, 2, 2)
	w.Fire(EventNext)
	w.Fire(EventNext)

	if err := w.Fire(EventReset); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateInitial {
		t.Errorf("state = %s, want %s", w.State(), StateInitial)
	}
	if w.Params() != product.DefaultBank() {
		t.Errorf("params not reset: %+v", w.Params())
	}
}

func TestSetSize(t *testing.T) {
	w := New()
	if err := w.SetSize(0.5, 0.4, 0.3, 2, 2); !errors.Is(err, ErrWrongState) {
		t.Errorf("initial SetSize error = %v, want ErrWrongState", err)
	}

	w.Fire(EventStart)
	if err := w.SetSize(0.5, 0.4, 0.3, 2, 2); err != nil {
		t.Fatal(err)
	}
	p := w.Params()
	if p.Width != 0.5 || p.Rows != 2 {
		t.Errorf("params = %+v", p)
	}

	if err := w.SetSize(-1, 0.4, 0.3, 1, 1); !errors.Is(err, product.ErrInvalidParams) {
		t.Errorf("negative width error = %v", err)
	}
	// Rejected edits leave the previous values intact.
	if w.Params().Width != 0.5 {
		t.Errorf("width = %v after rejected edit", w.Params().Width)
	}
}

func TestSetSizeClampsGrid(t *testing.T) {
	w := New()
	w.Fire(EventStart)
	if err := w.SetSize(0.5, 0.4, 0.3, 9, 9); err != nil {
		t.Fatal(err)
	}
	p := w.Params()
	if p.Rows != 5 || p.Columns != 3 {
		t.Errorf("grid = %dx%d, want clamped 5x3", p.Rows, p.Columns)
	}
}

func TestSetColor(t *testing.T) {
	w := New()
	w.Fire(EventStart)
	if err := w.SetColor("#383E42"); !errors.Is(err, ErrWrongState) {
		t.Errorf("size-step SetColor error = %v, want ErrWrongState", err)
	}

	w.Fire(EventNext)
	if err := w.SetColor("not-a-color"); err == nil {
		t.Error("invalid hex should fail")
	}
	if err := w.SetColor("#383E42"); err != nil {
		t.Fatal(err)
	}
	if w.Params().Color != "#383E42" {
		t.Errorf("color = %q", w.Params().Color)
	}
}
