// Package panel models the open/closed state of the project cards' details
// panels. The state lives here, keyed by card id, instead of being inferred
// from what is currently visible in the rendered page: the renderer and the
// dev server ask the controller what is open, never the other way around.
package panel

// State is the visual state of one card's details panel.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Controller tracks which card, if any, has its details panel open.
// At most one card is Open at any time; opening a card closes whichever
// card was open before. The zero value is not usable; use New.
type Controller struct {
	known  map[string]bool
	openID string
}

// New creates a controller for the given card ids. Order is irrelevant;
// duplicates are collapsed.
func New(ids ...string) *Controller {
	c := &Controller{known: make(map[string]bool, len(ids))}
	for _, id := range ids {
		c.known[id] = true
	}
	return c
}

// Register adds a card id. Cards are registered as they are built and never
// removed; the page's card set is fixed after the initial render.
func (c *Controller) Register(id string) {
	c.known[id] = true
}

// StateOf returns the panel state for a card id. Unknown ids are Closed.
func (c *Controller) StateOf(id string) State {
	if c.openID == id && c.known[id] {
		return Open
	}
	return Closed
}

// OpenID returns the id of the open card, if any.
func (c *Controller) OpenID() (string, bool) {
	return c.openID, c.openID != ""
}

// Open transitions the card to Open, closing any other open card first.
// Opening an unknown card is a no-op.
func (c *Controller) Open(id string) {
	if !c.known[id] {
		return
	}
	c.openID = id
}

// Close transitions the card to Closed. Closing a card that is not the open
// one is a no-op.
func (c *Controller) Close(id string) {
	if c.openID == id {
		c.openID = ""
	}
}

// Toggle flips the card's state: Closed cards open (closing any other open
// card), Open cards close. Unknown ids are a no-op.
func (c *Controller) Toggle(id string) {
	if !c.known[id] {
		return
	}
	if c.openID == id {
		c.openID = ""
		return
	}
	c.openID = id
}
