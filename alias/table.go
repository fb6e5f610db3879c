package alias

import "maps"

// tableState is the lifecycle of the derived lookup table.
type tableState uint8

const (
	tableUnbuilt tableState = iota
	tableBuilt
)

// lookupTable maps processed keys to representatives.
// Mutators either move it back to tableUnbuilt or keep it consistent in place.
type lookupTable struct {
	state tableState
	// entries holds every key, alias and representative alike.
	entries map[string]string
	// repKeys holds the keys owned by representatives. An alias never
	// overwrites one of these.
	repKeys map[string]string
}

func newLookupTable(capacity int) lookupTable {
	return lookupTable{
		state:   tableBuilt,
		entries: make(map[string]string, capacity),
		repKeys: make(map[string]string),
	}
}

func (t *lookupTable) built() bool { return t.state == tableBuilt }

func (t *lookupTable) invalidate() { *t = lookupTable{} }

func (t *lookupTable) get(key string) (string, bool) {
	rep, ok := t.entries[key]
	return rep, ok
}

func (t *lookupTable) setAlias(key, representative string) {
	if _, owned := t.repKeys[key]; owned {
		return
	}

	t.entries[key] = representative
}

func (t *lookupTable) setRepresentative(key, representative string) {
	t.repKeys[key] = representative
	t.entries[key] = representative
}

func (t *lookupTable) snapshot() map[string]string {
	return maps.Clone(t.entries)
}
