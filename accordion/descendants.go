package accordion

import "errors"

// ErrItemNotRegistered is returned when an item's index is queried before
// the item has completed registration, or after it was removed.
var ErrItemNotRegistered = errors.New("accordion: item not registered")

// descendantRegistry assigns each mounted item a zero-based index ordered
// by tree position, independent of registration order. The full index
// table is rebuilt synchronously on every structural change, so an index
// handed out is valid until the next register/unregister call and items
// earlier in the tree always carry smaller indices.
type descendantRegistry struct {
	order []*Item       // tree order
	index map[*Item]int // handle -> current index
}

func newDescendantRegistry() *descendantRegistry {
	return &descendantRegistry{index: make(map[*Item]int)}
}

// register inserts the item at the given tree position and returns its
// index. Registering an already-registered item moves it: callers never
// need to track their prior position.
func (r *descendantRegistry) register(item *Item, pos int) int {
	if _, ok := r.index[item]; ok {
		r.remove(item)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(r.order) {
		pos = len(r.order)
	}
	r.order = append(r.order, nil)
	copy(r.order[pos+1:], r.order[pos:])
	r.order[pos] = item
	r.reindex()
	return r.index[item]
}

// unregister removes the item; the remaining indices stay contiguous and
// tree-ordered. Unregistering an unknown item is a no-op.
func (r *descendantRegistry) unregister(item *Item) {
	if _, ok := r.index[item]; !ok {
		return
	}
	r.remove(item)
	r.reindex()
}

// indexOf returns the item's current index, or ErrItemNotRegistered.
func (r *descendantRegistry) indexOf(item *Item) (int, error) {
	idx, ok := r.index[item]
	if !ok {
		return 0, ErrItemNotRegistered
	}
	return idx, nil
}

func (r *descendantRegistry) len() int {
	return len(r.order)
}

func (r *descendantRegistry) remove(item *Item) {
	pos := r.index[item]
	r.order = append(r.order[:pos], r.order[pos+1:]...)
	delete(r.index, item)
}

func (r *descendantRegistry) reindex() {
	for i, it := range r.order {
		r.index[it] = i
	}
}
