package laser

import (
	"fmt"
	"io"
)

// Missing-collaborator warnings, each logged at most once per pointer.
const (
	warnNoRegistry uint8 = 1 << iota
	warnNoPhysics
	warnNoSurfaces
)

// SetDebugMode enables or disables per-event trace lines on the log output.
func (p *Pointer) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// SetLogOutput redirects warnings and debug traces (default os.Stderr).
// A nil writer silences them.
func (p *Pointer) SetLogOutput(w io.Writer) {
	p.logOut = w
}

// warnOnce logs a warning the first time kind is reported for this pointer.
func (p *Pointer) warnOnce(kind uint8, format string, args ...any) {
	if p.warned&kind != 0 {
		return
	}
	p.warned |= kind
	if p.logOut == nil {
		return
	}
	_, _ = fmt.Fprintf(p.logOut, "[laser] warning: "+format+"\n", args...)
}

func (p *Pointer) debugf(format string, args ...any) {
	if p.logOut == nil {
		return
	}
	_, _ = fmt.Fprintf(p.logOut, "[laser] "+format+"\n", args...)
}
