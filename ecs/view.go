package ecs

// View1 iterates every entity carrying a T1, via the dense-array fast
// path: no sparse lookups, a guaranteed sequential scan of the column.
type View1[T1 any] struct {
	col1 *Column[T1]
}

// NewView1 builds a single-component view, registering T1 if needed.
func NewView1[T1 any](r *Registry) *View1[T1] {
	RegisterType[T1](r)
	col1, _ := columnFor[T1](r)
	return &View1[T1]{col1: col1}
}

// Each invokes fn for every entity that has T1.
func (v *View1[T1]) Each(fn func(Entity, *T1)) {
	if v.col1 == nil {
		return
	}
	for i := 0; i < v.col1.Len(); i++ {
		fn(v.col1.EntityAt(i), v.col1.At(i))
	}
}

// View2 iterates the intersection of T1 and T2, walking whichever
// column is smaller and probing the other.
type View2[T1, T2 any] struct {
	registry *Registry
	ids      []ComponentID
	col1     *Column[T1]
	col2     *Column[T2]
}

// NewView2 builds a two-component view, registering T1/T2 if needed.
func NewView2[T1, T2 any](r *Registry) *View2[T1, T2] {
	id1 := RegisterType[T1](r)
	id2 := RegisterType[T2](r)
	col1, _ := columnFor[T1](r)
	col2, _ := columnFor[T2](r)
	return &View2[T1, T2]{registry: r, ids: []ComponentID{id1, id2}, col1: col1, col2: col2}
}

// Each invokes fn for every entity that has both T1 and T2.
func (v *View2[T1, T2]) Each(fn func(Entity, *T1, *T2)) {
	if v.col1 == nil || v.col2 == nil {
		return
	}
	smallest := v.registry.smallestColumn(v.ids)
	if smallest == nil {
		return
	}
	for _, e := range smallest.Entities() {
		p1 := v.col1.GetPtr(e)
		if p1 == nil {
			continue
		}
		p2 := v.col2.GetPtr(e)
		if p2 == nil {
			continue
		}
		fn(e, p1, p2)
	}
}

// View3 iterates the intersection of T1, T2 and T3.
type View3[T1, T2, T3 any] struct {
	registry *Registry
	ids      []ComponentID
	col1     *Column[T1]
	col2     *Column[T2]
	col3     *Column[T3]
}

// NewView3 builds a three-component view, registering every type if needed.
func NewView3[T1, T2, T3 any](r *Registry) *View3[T1, T2, T3] {
	id1 := RegisterType[T1](r)
	id2 := RegisterType[T2](r)
	id3 := RegisterType[T3](r)
	col1, _ := columnFor[T1](r)
	col2, _ := columnFor[T2](r)
	col3, _ := columnFor[T3](r)
	return &View3[T1, T2, T3]{registry: r, ids: []ComponentID{id1, id2, id3}, col1: col1, col2: col2, col3: col3}
}

// Each invokes fn for every entity that has T1, T2 and T3.
func (v *View3[T1, T2, T3]) Each(fn func(Entity, *T1, *T2, *T3)) {
	if v.col1 == nil || v.col2 == nil || v.col3 == nil {
		return
	}
	smallest := v.registry.smallestColumn(v.ids)
	if smallest == nil {
		return
	}
	for _, e := range smallest.Entities() {
		p1 := v.col1.GetPtr(e)
		if p1 == nil {
			continue
		}
		p2 := v.col2.GetPtr(e)
		if p2 == nil {
			continue
		}
		p3 := v.col3.GetPtr(e)
		if p3 == nil {
			continue
		}
		fn(e, p1, p2, p3)
	}
}

// View4 iterates the intersection of T1, T2, T3 and T4.
type View4[T1, T2, T3, T4 any] struct {
	registry *Registry
	ids      []ComponentID
	col1     *Column[T1]
	col2     *Column[T2]
	col3     *Column[T3]
	col4     *Column[T4]
}

// NewView4 builds a four-component view, registering every type if needed.
func NewView4[T1, T2, T3, T4 any](r *Registry) *View4[T1, T2, T3, T4] {
	id1 := RegisterType[T1](r)
	id2 := RegisterType[T2](r)
	id3 := RegisterType[T3](r)
	id4 := RegisterType[T4](r)
	col1, _ := columnFor[T1](r)
	col2, _ := columnFor[T2](r)
	col3, _ := columnFor[T3](r)
	col4, _ := columnFor[T4](r)
	return &View4[T1, T2, T3, T4]{registry: r, ids: []ComponentID{id1, id2, id3, id4}, col1: col1, col2: col2, col3: col3, col4: col4}
}

// Each invokes fn for every entity that has T1, T2, T3 and T4.
func (v *View4[T1, T2, T3, T4]) Each(fn func(Entity, *T1, *T2, *T3, *T4)) {
	if v.col1 == nil || v.col2 == nil || v.col3 == nil || v.col4 == nil {
		return
	}
	smallest := v.registry.smallestColumn(v.ids)
	if smallest == nil {
		return
	}
	for _, e := range smallest.Entities() {
		p1 := v.col1.GetPtr(e)
		if p1 == nil {
			continue
		}
		p2 := v.col2.GetPtr(e)
		if p2 == nil {
			continue
		}
		p3 := v.col3.GetPtr(e)
		if p3 == nil {
			continue
		}
		p4 := v.col4.GetPtr(e)
		if p4 == nil {
			continue
		}
		fn(e, p1, p2, p3, p4)
	}
}
