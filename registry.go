package laser

// SurfaceRegistry tracks the candidate surfaces pointers test against.
// Registration order is significant: when two surfaces are hit at the same
// distance, the one registered first wins.
//
// The registry is owned by the enclosing scene. Pointers only call
// ActiveSurfaces, so several pointers may read it within the same tick.
type SurfaceRegistry struct {
	surfaces []Surface
}

// NewSurfaceRegistry creates an empty registry.
func NewSurfaceRegistry() *SurfaceRegistry {
	return &SurfaceRegistry{}
}

// Register appends s to the registry. Registering a surface twice, or a nil
// surface, is a no-op. Other Surface implementations must not be registered
// as typed nil pointers.
func (r *SurfaceRegistry) Register(s Surface) {
	if s == nil {
		return
	}
	if p, ok := s.(*Panel); ok && p == nil {
		return
	}
	for _, existing := range r.surfaces {
		if existing == s {
			return
		}
	}
	r.surfaces = append(r.surfaces, s)
}

// Unregister removes s, preserving the order of the remaining surfaces.
func (r *SurfaceRegistry) Unregister(s Surface) {
	for i, existing := range r.surfaces {
		if existing == s {
			copy(r.surfaces[i:], r.surfaces[i+1:])
			r.surfaces[len(r.surfaces)-1] = nil
			r.surfaces = r.surfaces[:len(r.surfaces)-1]
			return
		}
	}
}

// Len returns the number of registered surfaces, visible or not.
func (r *SurfaceRegistry) Len() int {
	return len(r.surfaces)
}

// ActiveSurfaces appends the visible surfaces to buf in registration order
// and returns it.
func (r *SurfaceRegistry) ActiveSurfaces(buf []Surface) []Surface {
	for _, s := range r.surfaces {
		if s.Visible() {
			buf = append(buf, s)
		}
	}
	return buf
}
