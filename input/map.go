package input

// Map owns the sources of one controller (one player) keyed by id.
type Map struct {
	sources map[string]*Source
	order   []string
}

// NewMap creates a map with a source for each id.
func NewMap(ids ...string) *Map {
	m := &Map{sources: make(map[string]*Source, len(ids))}
	for _, id := range ids {
		m.Add(id)
	}
	return m
}

// Add returns the source for id, creating it if needed.
func (m *Map) Add(id string) *Source {
	if src, ok := m.sources[id]; ok {
		return src
	}
	src := NewSource(id)
	m.sources[id] = src
	m.order = append(m.order, id)
	return src
}

// Source looks up a source by id.
func (m *Map) Source(id string) (*Source, bool) {
	if m == nil {
		return nil, false
	}
	src, ok := m.sources[id]
	return src, ok
}

// Sources returns every source in insertion order.
func (m *Map) Sources() []*Source {
	out := make([]*Source, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sources[id])
	}
	return out
}

// SetEnabled enables or disables every source in the map.
func (m *Map) SetEnabled(enabled bool) {
	for _, src := range m.sources {
		if enabled {
			src.Enable()
		} else {
			src.Disable()
		}
	}
}
