package keyed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tileState struct {
	serial int
}

func counter() func(string) *tileState {
	n := 0
	return func(string) *tileState {
		n++
		return &tileState{serial: n}
	}
}

func TestReconcileCreatesInOrder(t *testing.T) {
	l := New[string, *tileState]()
	d := l.Reconcile([]string{"Wait", "Log"}, counter())
	require.Equal(t, []string{"Wait", "Log"}, d.Created)
	require.Empty(t, d.Removed)
	require.Empty(t, d.Moved)
	require.Equal(t, []string{"Wait", "Log"}, l.Keys())
	require.Equal(t, 2, l.Len())
}

func TestReorderPreservesState(t *testing.T) {
	l := New[string, *tileState]()
	create := counter()
	l.Reconcile([]string{"a", "b", "c"}, create)
	before := map[string]*tileState{}
	for _, k := range l.Keys() {
		s, _ := l.Get(k)
		before[k] = s
	}

	d := l.Reconcile([]string{"c", "a", "b"}, create)
	require.Empty(t, d.Created)
	require.Empty(t, d.Removed)
	require.NotEmpty(t, d.Moved)
	require.Equal(t, []string{"c", "a", "b"}, l.Keys())
	for k, s := range before {
		got, ok := l.Get(k)
		require.True(t, ok)
		require.Same(t, s, got, k)
	}
}

func TestReconcileSameOrderIsEmpty(t *testing.T) {
	l := New[string, int]()
	l.Reconcile([]string{"a", "b"}, func(string) int { return 1 })
	d := l.Reconcile([]string{"a", "b"}, func(string) int { return 2 })
	require.True(t, d.Empty())
	v, _ := l.Get("a")
	require.Equal(t, 1, v)
}

func TestReconcileDropsAndAdds(t *testing.T) {
	l := New[string, *tileState]()
	create := counter()
	l.Reconcile([]string{"a", "b", "c"}, create)
	d := l.Reconcile([]string{"b", "d"}, create)
	require.Equal(t, []string{"d"}, d.Created)
	require.ElementsMatch(t, []string{"a", "c"}, d.Removed)
	require.Empty(t, d.Moved)
	_, ok := l.Get("a")
	require.False(t, ok)
	s, _ := l.Get("d")
	require.Equal(t, 4, s.serial)
}

func TestReconcileEmpty(t *testing.T) {
	l := New[string, int]()
	l.Reconcile([]string{"a"}, func(string) int { return 0 })
	d := l.Reconcile(nil, func(string) int { return 0 })
	require.Equal(t, []string{"a"}, d.Removed)
	require.Zero(t, l.Len())
	require.Equal(t, -1, l.Index("a"))
}

func TestDuplicatesKeepFirst(t *testing.T) {
	l := New[string, int]()
	d := l.Reconcile([]string{"a", "b", "a"}, func(string) int { return 0 })
	require.Equal(t, []string{"a"}, d.Duplicates)
	require.Equal(t, []string{"a", "b"}, l.Keys())
}

func TestSetIndexAt(t *testing.T) {
	l := New[string, int]()
	l.Reconcile([]string{"x", "y"}, func(string) int { return 0 })
	require.True(t, l.Set("y", 7))
	require.False(t, l.Set("z", 7))
	v, _ := l.Get("y")
	require.Equal(t, 7, v)
	require.Equal(t, 1, l.Index("y"))
	k, ok := l.At(0)
	require.True(t, ok)
	require.Equal(t, "x", k)
	_, ok = l.At(2)
	require.False(t, ok)
}
