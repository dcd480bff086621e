package gonml

// Dict is an insertion-ordered mapping from parameter name to value. It is
// the untyped per-block representation produced by Read and consumed by
// Write.
type Dict struct {
	keys []string
	m    map[string]any
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{m: map[string]any{}}
}

// Set stores v under name, appending the key on first assignment and keeping
// the original position on reassignment.
func (d *Dict) Set(name string, v any) {
	if _, ok := d.m[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.m[name] = v
}

// Get returns the value for name and whether it is present.
func (d *Dict) Get(name string) (any, bool) {
	v, ok := d.m[name]
	return v, ok
}

// Keys returns the parameter names in insertion order. The returned slice is
// shared; callers must not mutate it.
func (d *Dict) Keys() []string { return d.keys }

// Len reports the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Equal reports whether two Dicts hold the same keys in the same order with
// equal values.
func (d *Dict) Equal(other *Dict) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		if !valueEqual(d.m[k], other.m[k]) {
			return false
		}
	}
	return true
}

// DocDict is an insertion-ordered mapping from block name to its Dict. It is
// the untyped whole-document representation.
type DocDict struct {
	keys []string
	m    map[string]*Dict
}

// NewDocDict returns an empty DocDict.
func NewDocDict() *DocDict {
	return &DocDict{m: map[string]*Dict{}}
}

// Set stores a block Dict under name, keeping first-assignment order.
func (d *DocDict) Set(name string, block *Dict) {
	if _, ok := d.m[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.m[name] = block
}

// Get returns the block Dict for name and whether it is present.
func (d *DocDict) Get(name string) (*Dict, bool) {
	b, ok := d.m[name]
	return b, ok
}

// Keys returns the block names in insertion order. The returned slice is
// shared; callers must not mutate it.
func (d *DocDict) Keys() []string { return d.keys }

// Len reports the number of blocks.
func (d *DocDict) Len() int { return len(d.keys) }

// Equal reports whether two DocDicts hold the same blocks in the same order
// with equal contents.
func (d *DocDict) Equal(other *DocDict) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		if !d.m[k].Equal(other.m[k]) {
			return false
		}
	}
	return true
}

// valueEqual compares two values of the model's allowed shapes.
func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ae, be := elemsOf(a), elemsOf(b)
	if isList(a) != isList(b) || len(ae) != len(be) {
		return false
	}
	for i := range ae {
		if ae[i] != be[i] {
			return false
		}
	}
	return true
}
