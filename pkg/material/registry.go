package material

// Handle references a material stored in a Registry
type Handle int

// Registry is an append-only arena of materials shared by the objects of a scene.
// It is built before rendering and only read afterwards.
type Registry struct {
	materials []Material
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores m and returns the handle objects use to reference it
func (r *Registry) Add(m Material) Handle {
	r.materials = append(r.materials, m)
	return Handle(len(r.materials) - 1)
}

// Get returns the material for h, or false if h was not issued by this registry
func (r *Registry) Get(h Handle) (Material, bool) {
	if h < 0 || int(h) >= len(r.materials) {
		return nil, false
	}
	return r.materials[h], true
}

// Len returns the number of registered materials
func (r *Registry) Len() int {
	return len(r.materials)
}
