// Package keyed keeps per-key view state across re-renders of an ordered
// collection, so a reorder moves state instead of recreating it.
package keyed

// Diff describes what one Reconcile pass changed.
type Diff[K comparable] struct {
	Created    []K
	Removed    []K
	Moved      []K
	Duplicates []K
}

// Empty reports whether the pass changed nothing.
func (d Diff[K]) Empty() bool {
	return len(d.Created) == 0 && len(d.Removed) == 0 && len(d.Moved) == 0
}

// List is an ordered mapping from key to state.
type List[K comparable, S any] struct {
	order []K
	state map[K]S
}

func New[K comparable, S any]() *List[K, S] {
	return &List[K, S]{state: map[K]S{}}
}

// Reconcile replaces the key order with keys. Surviving keys keep their state,
// new keys get create(key), and keys no longer present are dropped. A key that
// repeats within keys keeps its first position.
func (l *List[K, S]) Reconcile(keys []K, create func(K) S) Diff[K] {
	var d Diff[K]
	next := make([]K, 0, len(keys))
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			d.Duplicates = append(d.Duplicates, k)
			continue
		}
		seen[k] = struct{}{}
		next = append(next, k)
		if _, ok := l.state[k]; !ok {
			l.state[k] = create(k)
			d.Created = append(d.Created, k)
		}
	}

	oldKept := make([]K, 0, len(l.order))
	for _, k := range l.order {
		if _, ok := seen[k]; ok {
			oldKept = append(oldKept, k)
			continue
		}
		delete(l.state, k)
		d.Removed = append(d.Removed, k)
	}

	created := make(map[K]struct{}, len(d.Created))
	for _, k := range d.Created {
		created[k] = struct{}{}
	}
	i := 0
	for _, k := range next {
		if _, ok := created[k]; ok {
			continue
		}
		if oldKept[i] != k {
			d.Moved = append(d.Moved, k)
		}
		i++
	}

	l.order = next
	return d
}

func (l *List[K, S]) Keys() []K {
	out := make([]K, len(l.order))
	copy(out, l.order)
	return out
}

func (l *List[K, S]) Len() int { return len(l.order) }

func (l *List[K, S]) Get(k K) (S, bool) {
	s, ok := l.state[k]
	return s, ok
}

// Set replaces the state of an existing key. Unknown keys are ignored.
func (l *List[K, S]) Set(k K, s S) bool {
	if _, ok := l.state[k]; !ok {
		return false
	}
	l.state[k] = s
	return true
}

// Index returns the position of k, or -1.
func (l *List[K, S]) Index(k K) int {
	for i, o := range l.order {
		if o == k {
			return i
		}
	}
	return -1
}

// At returns the key at position i.
func (l *List[K, S]) At(i int) (K, bool) {
	var zero K
	if i < 0 || i >= len(l.order) {
		return zero, false
	}
	return l.order[i], true
}
