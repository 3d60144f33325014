package laser

// InjectPress queues a press-signal override: on the next Update the press
// signal reads true regardless of the value passed in. Overrides are consumed
// one per tick in queue order.
func (p *Pointer) InjectPress() {
	p.injectQueue = append(p.injectQueue, true)
}

// InjectRelease queues a released press signal for the next unconsumed tick.
func (p *Pointer) InjectRelease() {
	p.injectQueue = append(p.injectQueue, false)
}

// InjectClick queues a press followed by a release. Consumes two ticks.
func (p *Pointer) InjectClick() {
	p.InjectPress()
	p.InjectRelease()
}

// PendingInjections returns the number of queued overrides.
func (p *Pointer) PendingInjections() int {
	return len(p.injectQueue)
}
