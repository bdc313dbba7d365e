package ecs

// World is the top-level container: a registry plus the singleton
// (resource) map. It is the thin public surface for entity/name
// handling, view/sort construction, and singleton accessors, nothing
// more.
type World struct {
	registry   *Registry
	singletons map[any]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		registry:   NewRegistry(),
		singletons: make(map[any]any),
	}
}

// Registry exposes the underlying registry for callers that need it
// directly (e.g. to pass to the package-level view/component functions).
func (w *World) Registry() *Registry {
	return w.registry
}

// Entity creates a fresh anonymous entity.
func (w *World) Entity() Handle {
	return Handle{id: w.registry.CreateEntity(), world: w}
}

// NamedEntity returns the entity bound to name, creating it on first use.
func (w *World) NamedEntity(name string) Handle {
	return Handle{id: w.registry.NamedEntity(name), world: w}
}

// Lookup returns the entity bound to name. If name is unbound, the
// returned handle wraps InvalidEntity and IsValid reports false.
func (w *World) Lookup(name string) Handle {
	return Handle{id: w.registry.Lookup(name), world: w}
}

// Handle is a thin, copyable reference to one entity in one world. It
// carries no state of its own beyond the id and a back-reference to
// its world; all mutation is routed through the registry.
type Handle struct {
	id    Entity
	world *World
}

// ID returns the entity's raw numeric identifier.
func (h Handle) ID() uint32 {
	return uint32(h.id)
}

// Entity returns the underlying entity id.
func (h Handle) Entity() Entity {
	return h.id
}

// IsValid reports whether this handle refers to a live entity.
func (h Handle) IsValid() bool {
	return h.world != nil && h.id.IsValid() && h.world.registry.IsLive(h.id)
}

// Name returns the entity's bound name, or "" if it has none.
func (h Handle) Name() string {
	if h.world == nil {
		return ""
	}
	if name, ok := h.world.registry.entityToName[h.id]; ok {
		return name
	}
	return ""
}

// Type returns the human names of every component column this entity
// currently belongs to.
func (h Handle) Type() []string {
	if h.world == nil {
		return nil
	}
	return h.world.registry.GetEntityType(h.id)
}

// Destroy removes this entity from every column, unbinds its name,
// and releases its id for reuse.
func (h Handle) Destroy() {
	if h.world == nil {
		return
	}
	h.world.registry.DestroyEntity(h.id)
}

// AddComponent attaches v as component T on h's entity, returning h
// for chaining (e.g. AddComponent(e, Velocity{}) then SetComponent
// to fill it in).
func AddComponent[T any](h Handle, v T) Handle {
	Add[T](h.world.registry, h.id, v)
	return h
}

// SetComponent overwrites (or adds) component T on h's entity.
func SetComponent[T any](h Handle, v T) Handle {
	Set[T](h.world.registry, h.id, v)
	return h
}

// RemoveComponent drops component T from h's entity.
func RemoveComponent[T any](h Handle) Handle {
	Remove[T](h.world.registry, h.id)
	return h
}

// HasComponent reports whether h's entity carries component T.
// Checking "has all of T1, T2, ..." composes from repeated calls,
// HasComponent[A](h) && HasComponent[B](h), since Go generics have no
// variadic type parameter list to express an arity-free version of
// this directly.
func HasComponent[T any](h Handle) bool {
	return Has[T](h.world.registry, h.id)
}

// GetComponent returns a pointer to h's T component and whether it
// was present.
func GetComponent[T any](h Handle) (*T, bool) {
	p := GetPtr[T](h.world.registry, h.id)
	return p, p != nil
}

// Query1 builds a single-component view over w.
func Query1[T1 any](w *World) *View1[T1] {
	return NewView1[T1](w.registry)
}

// Query2 builds a two-component view over w.
func Query2[T1, T2 any](w *World) *View2[T1, T2] {
	return NewView2[T1, T2](w.registry)
}

// Query3 builds a three-component view over w.
func Query3[T1, T2, T3 any](w *World) *View3[T1, T2, T3] {
	return NewView3[T1, T2, T3](w.registry)
}

// Query4 builds a four-component view over w.
func Query4[T1, T2, T3, T4 any](w *World) *View4[T1, T2, T3, T4] {
	return NewView4[T1, T2, T3, T4](w.registry)
}

// Sort reorders component T's column in place by less.
func Sort[T any](w *World, less func(a, b T) bool) {
	SortColumn[T](w.registry, less)
}

// SetResource installs v as the singleton value for type T, replacing
// any previous value.
func SetResource[T any](w *World, v T) {
	key := componentKey[T]()
	if existing, ok := w.singletons[key]; ok {
		if p, ok2 := existing.(*T); ok2 {
			*p = v
			return
		}
	}
	boxed := v
	w.singletons[key] = &boxed
}

// GetResource returns a pointer to the singleton value for type T, and
// whether one has been set.
func GetResource[T any](w *World) (*T, bool) {
	val, ok := w.singletons[componentKey[T]()]
	if !ok {
		return nil, false
	}
	p, ok := val.(*T)
	return p, ok
}
