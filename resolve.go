package laser

// ResolveInteractive returns the nearest element, starting at el itself and
// walking up through its ancestors, whose Interactable flag is set. A label
// inside a button thus hands its hit to the button. Returns nil when no
// element in the chain is interactive or el is nil.
func ResolveInteractive(el *Element) *Element {
	for p := el; p != nil; p = p.Parent {
		if p.disposed {
			return nil
		}
		if p.Interactable {
			return p
		}
	}
	return nil
}
