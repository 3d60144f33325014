package laser

// Selection is published when a pointer clicks an element, e.g. a map marker.
type Selection struct {
	Element   *Element
	PointerID int
}

type selectionHandler struct {
	id uint32
	fn func(Selection)
}

// SelectionBus fans click selections out to subscribers. Components that
// care about selections subscribe when they are created and remove their
// handle when they are torn down; there is no process-wide instance.
type SelectionBus struct {
	handlers []selectionHandler
	nextID   uint32
}

// NewSelectionBus creates a bus with no subscribers.
func NewSelectionBus() *SelectionBus {
	return &SelectionBus{}
}

// SelectionHandle removes a subscription.
type SelectionHandle struct {
	id  uint32
	bus *SelectionBus
}

// Remove unsubscribes. Calling it more than once is a no-op.
func (h SelectionHandle) Remove() {
	if h.bus == nil {
		return
	}
	s := h.bus.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			h.bus.handlers = s[:len(s)-1]
			return
		}
	}
}

// Subscribe registers fn for every published selection.
func (b *SelectionBus) Subscribe(fn func(Selection)) SelectionHandle {
	b.nextID++
	b.handlers = append(b.handlers, selectionHandler{id: b.nextID, fn: fn})
	return SelectionHandle{id: b.nextID, bus: b}
}

// Publish delivers sel to subscribers in subscription order.
func (b *SelectionBus) Publish(sel Selection) {
	for _, h := range b.handlers {
		h.fn(sel)
	}
}

// Len returns the number of subscribers.
func (b *SelectionBus) Len() int {
	return len(b.handlers)
}
