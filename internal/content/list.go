package content

// List is an immutable, nil-free sequence of items.
type List struct {
	items []Item
}

// NewList copies items into a new list.
func NewList(items ...Item) List {
	cp := make([]Item, len(items))
	copy(cp, items)
	return List{items: cp}
}

// FromValues builds a list from arbitrary values, dropping nils.
func FromValues(values []any) List {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		if it, ok := FromValue(v); ok {
			items = append(items, it)
		}
	}
	return List{items: items}
}

// Of builds a list from a typed slice.
func Of[T any](values ...T) List {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		if it, ok := FromValue(any(v)); ok {
			items = append(items, it)
		}
	}
	return List{items: items}
}

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// Empty reports whether the list has no items.
func (l List) Empty() bool { return len(l.items) == 0 }

// Items returns a copy of the items.
func (l List) Items() []Item {
	cp := make([]Item, len(l.items))
	copy(cp, l.items)
	return cp
}

// Values returns the raw values in order.
func (l List) Values() []any {
	out := make([]any, len(l.items))
	for i, it := range l.items {
		out[i] = it.Value()
	}
	return out
}

// Labels renders every item with f.
func (l List) Labels(f Format) []string {
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = f.Label(it)
	}
	return out
}

// Resolve maps a raw draw index to an item. In cyclic mode the index wraps;
// otherwise indices outside the list report false.
func (l List) Resolve(index int, cyclic bool) (Item, bool) {
	n := len(l.items)
	if n == 0 {
		return Item{}, false
	}
	if cyclic {
		return l.items[Wrap(index, n)], true
	}
	if index < 0 || index >= n {
		return Item{}, false
	}
	return l.items[index], true
}

// At returns the item at position, clamping out-of-range positions to the
// nearest end. Only an empty list reports false.
func (l List) At(position int) (Item, bool) {
	n := len(l.items)
	if n == 0 {
		return Item{}, false
	}
	return l.items[Clamp(position, n)], true
}

// InRange reports whether position addresses an item.
func (l List) InRange(position int) bool {
	return position >= 0 && position < len(l.items)
}

// Wrap reduces index modulo n into [0, n).
func Wrap(index, n int) int {
	i := index % n
	if i < 0 {
		i += n
	}
	return i
}

// Clamp limits position to [0, n-1]. n must be positive.
func Clamp(position, n int) int {
	if position < 0 {
		return 0
	}
	if position >= n {
		return n - 1
	}
	return position
}
