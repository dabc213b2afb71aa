package panel

import "testing"

// openCount returns how many of the ids are Open.
func openCount(c *Controller, ids ...string) int {
	n := 0
	for _, id := range ids {
		if c.StateOf(id) == Open {
			n++
		}
	}
	return n
}

func TestInitialStateClosed(t *testing.T) {
	c := New("a", "b")
	if c.StateOf("a") != Closed || c.StateOf("b") != Closed {
		t.Error("cards should start Closed")
	}
	if _, ok := c.OpenID(); ok {
		t.Error("no card should be open initially")
	}
}

func TestOpenClosesOther(t *testing.T) {
	c := New("a", "b", "c")

	c.Open("a")
	if c.StateOf("a") != Open {
		t.Error("a should be Open")
	}

	c.Open("b")
	if c.StateOf("b") != Open {
		t.Error("b should be Open")
	}
	if c.StateOf("a") != Closed {
		t.Error("opening b should close a")
	}
	if openCount(c, "a", "b", "c") != 1 {
		t.Error("exactly one card should be Open")
	}
}

func TestToggle(t *testing.T) {
	c := New("a", "b")

	c.Toggle("a")
	if c.StateOf("a") != Open {
		t.Error("toggle on Closed card should open it")
	}

	c.Toggle("a")
	if c.StateOf("a") != Closed {
		t.Error("toggle on Open card should close it")
	}

	c.Toggle("a")
	c.Toggle("b")
	if c.StateOf("a") != Closed || c.StateOf("b") != Open {
		t.Error("toggling b while a is open should leave only b open")
	}
}

func TestCloseIsScoped(t *testing.T) {
	c := New("a", "b")
	c.Open("a")
	c.Close("b") // closing a card that is not open is a no-op
	if c.StateOf("a") != Open {
		t.Error("closing b should not touch a")
	}
	c.Close("a")
	if _, ok := c.OpenID(); ok {
		t.Error("nothing should be open after closing a")
	}
}

func TestUnknownIDNoOp(t *testing.T) {
	c := New("a")
	c.Toggle("ghost")
	c.Open("ghost")
	if _, ok := c.OpenID(); ok {
		t.Error("unknown ids must not open anything")
	}
	if c.StateOf("ghost") != Closed {
		t.Error("unknown id should report Closed")
	}
}

// TestSingleOpenInvariant drives an arbitrary operation sequence and checks
// that at most one card is ever Open.
func TestSingleOpenInvariant(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	c := New(ids...)

	ops := []struct {
		op string
		id string
	}{
		{"toggle", "a"}, {"toggle", "b"}, {"open", "c"}, {"toggle", "c"},
		{"open", "d"}, {"open", "a"}, {"close", "b"}, {"toggle", "a"},
		{"toggle", "a"}, {"open", "b"}, {"close", "b"}, {"toggle", "d"},
	}
	for i, op := range ops {
		switch op.op {
		case "toggle":
			c.Toggle(op.id)
		case "open":
			c.Open(op.id)
		case "close":
			c.Close(op.id)
		}
		if n := openCount(c, ids...); n > 1 {
			t.Fatalf("after op %d (%s %s): %d cards open", i, op.op, op.id, n)
		}
	}
}

func TestRegister(t *testing.T) {
	c := New()
	c.Register("late")
	c.Toggle("late")
	if c.StateOf("late") != Open {
		t.Error("registered card should toggle open")
	}
}
